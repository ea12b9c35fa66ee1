// Package helpbar renders the key hints shown above the content frame.
package helpbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type HelpEntry struct {
	Key  string
	Desc string
}

type Model struct {
	globalHelp    []HelpEntry
	viewHelp      []HelpEntry
	width         int
	rowsPerColumn int
	minColWidth   int
}

const (
	defaultMinColWidth   = 18
	defaultRowsPerColumn = 3
)

func New(width int) *Model {
	return &Model{
		globalHelp:    []HelpEntry{{Key: "q", Desc: "quit"}, {Key: ":", Desc: "go to"}},
		width:         width,
		rowsPerColumn: defaultRowsPerColumn,
		minColWidth:   defaultMinColWidth,
	}
}

func (m *Model) WithGlobalHelp(entries []HelpEntry) *Model {
	m.globalHelp = entries
	return m
}

func (m *Model) WithViewHelp(entries []HelpEntry) *Model {
	m.viewHelp = entries
	return m
}

func (m *Model) SetWidth(width int) *Model {
	m.width = width
	return m
}

// View renders brand on the left and the help columns beside it. Entries
// that do not fit in the width are dropped.
func (m *Model) View(brand string) string {
	allHelp := append(append([]HelpEntry(nil), m.globalHelp...), m.viewHelp...)
	if len(allHelp) == 0 {
		return brand
	}

	availableWidth := m.width - lipgloss.Width(brand) - 2
	if availableWidth < m.minColWidth {
		return brand
	}

	numCols := (len(allHelp) + m.rowsPerColumn - 1) / m.rowsPerColumn
	if maxCols := max(availableWidth/m.minColWidth, 1); numCols > maxCols {
		numCols = maxCols
	}

	columns := make([][]HelpEntry, numCols)
	for i, entry := range allHelp {
		col := i / m.rowsPerColumn
		if col >= numCols {
			break
		}
		columns[col] = append(columns[col], entry)
	}

	var renderedCols []string
	for colIdx, col := range columns {
		maxKeyLen := 0
		for _, entry := range col {
			maxKeyLen = max(maxKeyLen, lipgloss.Width("<"+entry.Key+">"))
		}

		var lines []string
		for _, entry := range col {
			keyText := "<" + entry.Key + ">"
			padding := maxKeyLen - lipgloss.Width(keyText)
			lines = append(lines, keyStyle.Render(keyText)+strings.Repeat(" ", padding+2)+Style.Render(entry.Desc))
		}

		if colIdx > 0 {
			renderedCols = append(renderedCols, "   ")
		}
		renderedCols = append(renderedCols, strings.Join(lines, "\n"))
	}

	helpBlock := lipgloss.NewStyle().
		Width(availableWidth).
		Align(lipgloss.Left).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, renderedCols...))

	return lipgloss.JoinHorizontal(lipgloss.Top, brand, "  ", helpBlock)
}
