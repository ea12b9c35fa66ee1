// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package commandinput

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Update handles key events and manages input, completion and history.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.visible {
		return nil
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd
	}

	switch key.String() {
	case "enter":
		val := strings.TrimSpace(m.input.Value())
		if val == "" {
			m.Hide()
			return nil
		}
		m.history = append(m.history, val)
		m.histPos = len(m.history)
		m.Hide()
		return func() tea.Msg { return SubmitMsg{Command: val} }

	case "esc":
		m.Hide()
		return nil

	case "tab":
		if len(m.suggestions) > 0 {
			m.SetValue(m.suggestions[m.selected])
		}
		return nil

	case "up":
		if len(m.history) == 0 {
			return nil
		}
		if m.histPos > 0 {
			m.histPos--
		}
		m.SetValue(m.history[m.histPos])
		return nil

	case "down":
		if len(m.history) == 0 {
			return nil
		}
		if m.histPos < len(m.history)-1 {
			m.histPos++
			m.SetValue(m.history[m.histPos])
		} else {
			m.histPos = len(m.history)
			m.SetValue("")
		}
		return nil
	}

	// Clear error when user edits
	if m.errorMsg != "" && (key.Type == tea.KeyRunes || key.Type == tea.KeyBackspace) {
		m.errorMsg = ""
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refreshSuggestions()
	return cmd
}
