package helpbar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewListsEntries(t *testing.T) {
	out := New(100).
		WithViewHelp([]HelpEntry{{Key: "enter", Desc: "select"}, {Key: "tab", Desc: "next"}}).
		View("BV")

	assert.Contains(t, out, "BV")
	assert.Contains(t, out, "<q>")
	assert.Contains(t, out, "select")
	assert.Contains(t, out, "<tab>")
}

func TestViewTooNarrowShowsBrandOnly(t *testing.T) {
	assert.Equal(t, "BV", New(10).View("BV"))
}

func TestViewNoEntries(t *testing.T) {
	assert.Equal(t, "BV", New(100).WithGlobalHelp(nil).View("BV"))
}

func TestViewDropsOverflowColumns(t *testing.T) {
	entries := []HelpEntry{
		{Key: "a", Desc: "one"}, {Key: "b", Desc: "two"}, {Key: "c", Desc: "three"},
		{Key: "d", Desc: "four"}, {Key: "e", Desc: "five"}, {Key: "f", Desc: "six"},
	}
	out := New(2+defaultMinColWidth+2).WithGlobalHelp(entries).View("")

	assert.Contains(t, out, "three")
	assert.NotContains(t, out, "four")
}
