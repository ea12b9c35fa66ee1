package app

import (
	"bvberber/router"
	"bvberber/routes"
	"bvberber/ui"
	"bvberber/views/helpbar"

	"github.com/charmbracelet/lipgloss"
)

var brandStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#13ec5b")).
	Bold(true).
	Padding(0, 1)

func (m *Model) View() string {
	help := helpbar.New(m.terminalWidth).
		WithViewHelp(m.viewHelp()).
		View(brandStyle.Render("✂ BV Berber"))

	footer := ""
	if label := m.focusedLabel(); label != "" {
		footer = ui.FrameHeaderStyle.Render("▸ " + label)
	}
	frame := ui.RenderFramedBox(m.title(), m.renderHistoryBar(), m.viewport.View(), footer, m.terminalWidth)

	parts := []string{help}
	if m.commandInput.Visible() {
		parts = append(parts, m.commandInput.View())
	}
	parts = append(parts, frame)
	if nav := m.router.Navbar().View(m.terminalWidth); nav != "" {
		parts = append(parts, nav)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// title names the installed screen, with a spinner while the next one loads.
func (m *Model) title() string {
	title := m.router.Route()
	for _, it := range m.router.Navbar().Items() {
		if it.Route == title {
			title = it.Label
		}
	}
	if v := m.router.View(); v != nil && v.Route == router.NotFoundRoute {
		title = "⚠ " + title
	}
	if m.router.Phase() == router.PhaseFadingOut {
		title = ui.SpinnerCharAt(m.frame) + " " + title
	}
	return title
}

func (m *Model) viewHelp() []helpbar.HelpEntry {
	entries := []helpbar.HelpEntry{
		{Key: "tab", Desc: "next"},
		{Key: "enter", Desc: "select"},
		{Key: "esc", Desc: "back"},
	}
	if !m.router.Navbar().Hidden() {
		entries = append(entries, helpbar.HelpEntry{Key: "1-4", Desc: "menu"})
	}
	if m.router.Route() == routes.AppointmentSelection {
		entries = append(entries, helpbar.HelpEntry{Key: "pgdn", Desc: "scroll"})
	}
	return entries
}
