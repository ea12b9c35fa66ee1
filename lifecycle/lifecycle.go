// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package lifecycle binds behaviour to a freshly inserted screen fragment.
package lifecycle

import (
	"fmt"
	"strings"

	"bvberber/booking"
	"bvberber/markup"
	"bvberber/navigation"
	"bvberber/routes"
	"bvberber/scope"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/net/html"
)

// HookBack marks the element that goes to the previous history entry.
const HookBack = "back"

// View is one bound screen activation.
type View struct {
	Route   string
	Scope   *scope.Scope
	Booking *booking.Machine // set on the appointment selection screen only
}

// Dispose unbinds every handler the activation registered.
func (v *View) Dispose() {
	if v == nil {
		return
	}
	v.Scope.Dispose()
}

// Manager binds screens to a navigator.
type Manager struct {
	nav navigation.Navigator
}

func NewManager(nav navigation.Navigator) *Manager {
	return &Manager{nav: nav}
}

// BindView binds the back action, in-fragment route links and, for the
// appointment selection screen, a fresh booking machine. A selection screen
// missing required hooks is an error and nothing stays bound.
func (m *Manager) BindView(route string, tree *markup.Tree) (*View, error) {
	v := &View{Route: route, Scope: scope.New(route)}

	if back := tree.Hook(HookBack); back != nil {
		v.Scope.Bind(back, labelOf(back, "Geri"), m.nav.Back)
	}

	for _, link := range markup.All(tree.Root(), isRouteLink) {
		target := linkTarget(link)
		v.Scope.Bind(link, labelOf(link, target), m.navigateTo(target))
	}

	if route == routes.AppointmentSelection {
		machine, err := booking.New(tree, m.nav, v.Scope)
		if err != nil {
			v.Dispose()
			return nil, fmt.Errorf("bind %s: %w", route, err)
		}
		v.Booking = machine
	}
	return v, nil
}

func (m *Manager) navigateTo(route string) scope.Handler {
	return func() tea.Cmd { return m.nav.Navigate(route) }
}

func isRouteLink(n *html.Node) bool {
	return linkTarget(n) != ""
}

// linkTarget reads data-route, or an in-page href="#route".
func linkTarget(n *html.Node) string {
	if r, ok := markup.Attr(n, "data-route"); ok {
		return navigation.Trim(r)
	}
	if n.Data != "a" {
		return ""
	}
	href, ok := markup.Attr(n, "href")
	if !ok || !strings.HasPrefix(href, "#") {
		return ""
	}
	return navigation.Trim(href)
}

func labelOf(n *html.Node, fallback string) string {
	if t := markup.Text(n); t != "" {
		return t
	}
	return fallback
}
