// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package navigation holds the navigation fragment, the one piece of "URL"
// state, and its back history.
package navigation

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// FragmentChangedMsg is emitted whenever the fragment changes, whether by
// programmatic navigation or by going back.
type FragmentChangedMsg struct {
	Fragment string
}

// Navigator is the only navigation API exposed to screen collaborators.
type Navigator interface {
	Navigate(route string) tea.Cmd
	Back() tea.Cmd
}

// Location stores the current fragment and the entries behind it.
type Location struct {
	fragment string
	history  []string
}

// Fragment returns the raw fragment, e.g. "#welcome", or "" when unset.
func (l *Location) Fragment() string { return l.fragment }

// Route returns the route name the fragment points at, or home when empty.
func (l *Location) Route(home string) string {
	if r := Trim(l.fragment); r != "" {
		return r
	}
	return home
}

// Set points the fragment at route. It reports false, and records nothing,
// when the fragment already has that value.
func (l *Location) Set(route string) bool {
	next := "#" + Trim(route)
	if next == l.fragment {
		return false
	}
	if l.fragment != "" {
		l.history = append(l.history, l.fragment)
	}
	l.fragment = next
	return true
}

// Back moves to the previous entry. It reports false when there is none.
func (l *Location) Back() bool {
	if len(l.history) == 0 {
		return false
	}
	l.fragment = l.history[len(l.history)-1]
	l.history = l.history[:len(l.history)-1]
	return true
}

// Depth is the number of entries behind the current one.
func (l *Location) Depth() int { return len(l.history) }

// History returns the entries behind the current one, oldest first.
func (l *Location) History() []string {
	cpy := make([]string, len(l.history))
	copy(cpy, l.history)
	return cpy
}

// Changed wraps the current fragment in a tea.Cmd.
func (l *Location) Changed() tea.Cmd {
	fragment := l.fragment
	return func() tea.Msg { return FragmentChangedMsg{Fragment: fragment} }
}

// Trim strips the leading '#' and surrounding space from a fragment.
func Trim(fragment string) string {
	return strings.TrimPrefix(strings.TrimSpace(fragment), "#")
}
