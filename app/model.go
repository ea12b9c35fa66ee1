// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package app

import (
	"fmt"

	"bvberber/commands"
	"bvberber/markup"
	"bvberber/navigation"
	"bvberber/router"
	"bvberber/ui"
	"bvberber/views/commandinput"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/net/html"
)

const (
	helpHeight   = 3
	frameChrome  = 4 // borders, breadcrumb and focus line
	navbarHeight = 2
	maxCrumbs    = 4
)

// Model is the root Bubble Tea model: the content frame driven by the
// router, the navigation bar under it and the command bar.
type Model struct {
	router       *router.Router
	viewport     viewport.Model
	commandInput *commandinput.Model
	commands     *commands.Registry

	focus    int
	frame    int
	spinning bool

	terminalWidth  int
	terminalHeight int
}

func New(r *router.Router) *Model {
	reg := commands.NewRegistry(commands.Builtins()...)
	words := append(r.Routes().Names(), reg.Names()...)
	return &Model{
		router:       r,
		viewport:     viewport.New(80, 20),
		commandInput: commandinput.New(words),
		commands:     reg,
	}
}

// Init starts on the home screen.
func (m *Model) Init() tea.Cmd {
	return m.router.Start()
}

// targets returns the bound elements of the current screen in document order.
func (m *Model) targets() []*html.Node {
	v := m.router.View()
	if v == nil {
		return nil
	}
	return markup.All(m.router.Tree().Root(), v.Scope.Bound)
}

func (m *Model) focused() *html.Node {
	t := m.targets()
	if len(t) == 0 {
		return nil
	}
	return t[m.focus%len(t)]
}

func (m *Model) focusedLabel() string {
	n := m.focused()
	if n == nil {
		return ""
	}
	for _, t := range m.router.View().Scope.Targets() {
		if t.Node == n {
			return t.Label
		}
	}
	return ""
}

func (m *Model) moveFocus(delta int) {
	n := len(m.targets())
	if n == 0 {
		m.focus = 0
		return
	}
	m.focus = ((m.focus+delta)%n + n) % n
	m.refresh()
}

// refresh redraws the screen tree into the viewport.
func (m *Model) refresh() {
	m.viewport.SetContent(ui.RenderTree(m.router.Tree().Root(), ui.RenderOptions{
		Width:   m.viewport.Width,
		Focused: m.focused(),
		Faint:   m.router.Phase() == router.PhaseFadingOut,
	}))
}

// layout sizes the viewport to what the surrounding chrome leaves.
func (m *Model) layout() {
	if m.terminalWidth == 0 || m.terminalHeight == 0 {
		return
	}
	used := helpHeight + frameChrome
	if !m.router.Navbar().Hidden() {
		used += navbarHeight
	}
	if m.commandInput.Visible() {
		used += lipgloss.Height(m.commandInput.View())
	}
	m.viewport.Width = max(m.terminalWidth-2, 20)
	m.viewport.Height = max(m.terminalHeight-used, 3)
}

func (m *Model) renderHistoryBar() string {
	loc := m.router.Location()
	crumbs := append(loc.History(), loc.Fragment())

	var parts []string
	if len(crumbs) > maxCrumbs {
		parts = append(parts, lipgloss.NewStyle().Faint(true).Render("… → "))
		crumbs = crumbs[len(crumbs)-maxCrumbs:]
	}
	for i, c := range crumbs {
		if c == "" {
			continue
		}
		if i > 0 {
			parts = append(parts, lipgloss.NewStyle().Faint(true).Render(" → "))
		}
		style := ui.Rainbow[i%len(ui.Rainbow)]
		parts = append(parts, style.Render(fmt.Sprintf(" %s ", navigation.Trim(c))))
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, parts...)
}
