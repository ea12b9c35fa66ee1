package commandinput

import (
	"strings"

	"bvberber/utils"

	"github.com/charmbracelet/lipgloss"
)

var (
	cmdBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#303030")).
			Foreground(lipgloss.Color("#00d7ff")).
			Padding(0, 1)

	hintStyle = lipgloss.NewStyle().Faint(true).Padding(0, 1)

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff5f87")).
			Bold(true).
			Padding(0, 1)
)

// View renders the command bar, completions and optional error message.
func (m *Model) View() string {
	if !m.visible {
		return ""
	}

	view := cmdBarStyle.Render(m.input.View())

	if len(m.suggestions) > 0 && len(m.suggestions) < len(m.words) {
		q := m.query()
		hints := make([]string, len(m.suggestions))
		for i, s := range m.suggestions {
			hints[i] = utils.HighlightMatches(s, q, utils.FindAllMatches(s, q))
		}
		view += "\n" + hintStyle.Render("tab → "+strings.Join(hints, "  "))
	}
	if m.errorMsg != "" {
		view += "\n" + errStyle.Render(m.errorMsg)
	}
	return view
}
