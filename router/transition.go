// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package router

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultTransitionDelay stands in for the fade-out animation.
const DefaultTransitionDelay = 200 * time.Millisecond

// Transition waits for the exit transition of navigation seq and then reports
// TransitionDoneMsg{Seq: seq}. It may be a timer or any "transition ended"
// signal the environment provides.
type Transition func(seq uint64) tea.Cmd

// Delay is a fixed-duration Transition.
func Delay(d time.Duration) Transition {
	if d <= 0 {
		return Immediate()
	}
	return func(seq uint64) tea.Cmd {
		return tea.Tick(d, func(time.Time) tea.Msg {
			return TransitionDoneMsg{Seq: seq}
		})
	}
}

// Immediate ends the transition right away.
func Immediate() Transition {
	return func(seq uint64) tea.Cmd {
		return func() tea.Msg { return TransitionDoneMsg{Seq: seq} }
	}
}
