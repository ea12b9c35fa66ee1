// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package navbar is the persistent bottom navigation bar and its active-item
// indicator.
package navbar

import (
	"bvberber/routes"

	"github.com/charmbracelet/lipgloss"
)

type Item struct {
	Route  string
	Label  string
	Icon   string
	Active bool
}

// DefaultItems are the bar's entries in display order.
func DefaultItems() []Item {
	return []Item{
		{Route: routes.Welcome, Label: "Ana Sayfa", Icon: "⌂"},
		{Route: routes.Services, Label: "Hizmetler", Icon: "✂"},
		{Route: routes.Appointments, Label: "Randevular", Icon: "▤"},
		{Route: routes.Profile, Label: "Profil", Icon: "☺"},
	}
}

// Indicate returns a copy of items with Active set exactly on the items whose
// route equals route.
func Indicate(route string, items []Item) []Item {
	out := make([]Item, len(items))
	for i, it := range items {
		it.Active = it.Route == route
		out[i] = it
	}
	return out
}

// Bar is the navigation bar state.
type Bar struct {
	items  []Item
	hidden bool
}

func New(items []Item) *Bar {
	return &Bar{items: Indicate("", items)}
}

// Show slides the bar in and marks route's item active.
func (b *Bar) Show(route string) {
	b.hidden = false
	b.items = Indicate(route, b.items)
}

// Hide slides the bar out. The indicator keeps its last state.
func (b *Bar) Hide() { b.hidden = true }

func (b *Bar) Hidden() bool { return b.hidden }

func (b *Bar) Items() []Item {
	out := make([]Item, len(b.items))
	copy(out, b.items)
	return out
}

// RouteAt returns the route of the n-th item, counting from 1.
func (b *Bar) RouteAt(n int) (string, bool) {
	if n < 1 || n > len(b.items) {
		return "", false
	}
	return b.items[n-1].Route, true
}

var (
	activeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#13ec5b")).
			Bold(true).
			Padding(0, 2)

	inactiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Padding(0, 2)

	barStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(lipgloss.Color("238"))
)

// View renders the bar centred in width. A hidden bar renders nothing.
func (b *Bar) View(width int) string {
	if b.hidden {
		return ""
	}
	cells := make([]string, 0, len(b.items))
	for _, it := range b.items {
		style := inactiveStyle
		if it.Active {
			style = activeStyle
		}
		cells = append(cells, style.Render(it.Icon+" "+it.Label))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	return barStyle.Width(width).Align(lipgloss.Center).Render(row)
}
