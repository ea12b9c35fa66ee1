package app

import (
	"time"

	"bvberber/router"

	tea "github.com/charmbracelet/bubbletea"
)

const spinnerInterval = 80 * time.Millisecond

type spinnerTickMsg struct{}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(time.Time) tea.Msg {
		return spinnerTickMsg{}
	})
}

// startSpinner animates the title while a screen is being swapped.
func (m *Model) startSpinner() tea.Cmd {
	if m.spinning {
		return nil
	}
	m.spinning = true
	return spinnerTick()
}

func (m *Model) handleSpinnerTick() tea.Cmd {
	if m.router.Phase() != router.PhaseFadingOut {
		m.spinning = false
		return nil
	}
	m.frame++
	return spinnerTick()
}
