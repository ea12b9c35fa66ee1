// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package app

import (
	"errors"
	"strings"

	"bvberber/commands"
	"bvberber/navigation"
	"bvberber/router"
	"bvberber/views/commandinput"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.terminalWidth = msg.Width
		m.terminalHeight = msg.Height
		m.layout()
		m.refresh()
		return m, nil

	case navigation.FragmentChangedMsg:
		cmd := m.router.Update(msg)
		m.layout()
		m.refresh()
		return m, tea.Batch(cmd, m.startSpinner())

	case router.TransitionDoneMsg, router.FetchedMsg:
		return m, m.router.Update(msg)

	case router.ContentChangedMsg:
		m.focus = 0
		m.layout()
		m.refresh()
		m.router.Settle()
		return m, nil

	case router.ScrollTopMsg:
		m.viewport.GotoTop()
		return m, nil

	case spinnerTickMsg:
		return m, m.handleSpinnerTick()

	case commandinput.SubmitMsg:
		cmd := m.runCommand(msg.Command)
		m.layout()
		return m, cmd

	case commands.ErrorMsg:
		m.commandInput.ShowError(msg.Err.Error())
		m.layout()
		return m, nil

	case tea.KeyMsg:
		if m.commandInput.Visible() {
			cmd := m.commandInput.Update(msg)
			m.layout()
			return m, cmd
		}
		if msg.String() == ":" {
			cmd := m.commandInput.Show()
			m.layout()
			return m, cmd
		}
		return m, m.handleKey(msg)
	}

	var vpCmd tea.Cmd
	m.viewport, vpCmd = m.viewport.Update(msg)
	return m, tea.Batch(vpCmd, m.commandInput.Update(msg))
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c", "q":
		return tea.Quit
	case "esc", "backspace":
		return m.goBack()
	case "tab", "down", "j":
		m.moveFocus(1)
		return nil
	case "shift+tab", "up", "k":
		m.moveFocus(-1)
		return nil
	case "enter", " ":
		return m.activate()
	case "1", "2", "3", "4":
		bar := m.router.Navbar()
		if bar.Hidden() {
			return nil
		}
		route, ok := bar.RouteAt(int(msg.Runes[0] - '0'))
		if !ok {
			return nil
		}
		return m.router.Navigate(route)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

// activate runs the handlers of the focused element. Handlers may rewrite the
// tree, so it is redrawn straight after.
func (m *Model) activate() tea.Cmd {
	n := m.focused()
	if n == nil {
		return nil
	}
	cmd := m.router.View().Scope.Activate(n)
	m.refresh()
	return cmd
}

// goBack returns to the previous screen, or quits when there is none.
func (m *Model) goBack() tea.Cmd {
	if !m.router.CanGoBack() {
		return tea.Quit
	}
	return m.router.Back()
}

// runCommand handles a line typed into the command bar. A single word that
// is not a command is taken as a screen name, known or not.
func (m *Model) runCommand(raw string) tea.Cmd {
	cmd, a, err := m.commands.Parse(raw)
	if err != nil {
		var unknown *commands.UnknownCommandError
		if errors.As(err, &unknown) && len(strings.Fields(raw)) == 1 {
			return m.router.Navigate(navigation.Trim(raw))
		}
		m.commandInput.ShowError(err.Error())
		return nil
	}
	return cmd.Execute(commands.Context{Target: m.router, Home: m.router.Routes().Home()}, a)
}
