package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestRenderFramedBox(t *testing.T) {
	out := RenderFramedBox("Profil", "welcome → profile", "satır bir\nsatır iki", "▸ Geri", 40)
	lines := strings.Split(out, "\n")

	assert.Len(t, lines, 6)
	for _, l := range lines {
		assert.Equal(t, 40, lipgloss.Width(l))
	}
	assert.Contains(t, lines[0], "Profil")
	assert.Contains(t, lines[1], "welcome → profile")
	assert.Contains(t, lines[4], "▸ Geri")
}

func TestRenderFramedBoxAutoWidthAndTruncation(t *testing.T) {
	out := RenderFramedBox("T", "", "abc", "", 0)
	assert.Equal(t, 7, lipgloss.Width(strings.Split(out, "\n")[1]))

	out = RenderFramedBox("T", "", strings.Repeat("x", 50), "", 20)
	for _, l := range strings.Split(out, "\n") {
		assert.Equal(t, 20, lipgloss.Width(l))
	}
}

func TestSpinnerCharAt(t *testing.T) {
	first := SpinnerCharAt(0)
	assert.NotEmpty(t, first)
	assert.Equal(t, SpinnerCharAt(3), SpinnerCharAt(-3))
}
