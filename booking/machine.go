// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package booking

import (
	"fmt"

	"bvberber/core/primitives/hash"
	"bvberber/markup"
	"bvberber/navigation"
	"bvberber/routes"
	"bvberber/scope"
	applog "bvberber/utils/log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"golang.org/x/net/html"
)

// HookSubmit marks the confirm button.
const HookSubmit = "submit"

// MissingHookError reports a required hook absent from the selection markup.
type MissingHookError struct {
	Hook string
}

func (e *MissingHookError) Error() string {
	return fmt.Sprintf("appointment selection: required hook %q not found", e.Hook)
}

// Machine owns one activation of the appointment selection screen. A fresh
// Machine is built every time the screen is installed.
type Machine struct {
	id        uuid.UUID
	sel       Selection
	date      *Group
	staff     *Group
	time      *Group
	projector *Projector
	submit    *html.Node
	nav       navigation.Navigator
	log       *applog.Logger
}

// New wires the groups, summary and submit action found in tree, and binds
// their activation handlers into sc. Groups are located by data-group, the
// submit button by data-hook="submit"; any of them missing is an error.
func New(tree *markup.Tree, nav navigation.Navigator, sc *scope.Scope) (*Machine, error) {
	m := &Machine{
		id:        uuid.New(),
		sel:       DefaultSelection(),
		projector: NewProjector(tree),
		nav:       nav,
	}
	m.log = applog.L().With("screen", routes.AppointmentSelection, "machine", m.id.String())

	groups := map[Kind]**Group{KindDate: &m.date, KindStaff: &m.staff, KindTime: &m.time}
	for _, kind := range []Kind{KindDate, KindStaff, KindTime} {
		container := markup.First(tree.Root(), markup.AttrEquals("data-group", string(kind)))
		if container == nil {
			return nil, &MissingHookError{Hook: "group:" + string(kind)}
		}
		g := newGroup(kind, container, &m.sel, m.changed)
		initial := g.initial(m.sel)
		if initial == nil {
			return nil, &MissingHookError{Hook: "option:" + string(kind)}
		}
		g.apply(initial)
		*groups[kind] = g
	}

	m.submit = tree.Hook(HookSubmit)
	if m.submit == nil {
		return nil, &MissingHookError{Hook: HookSubmit}
	}

	for _, g := range []*Group{m.date, m.staff, m.time} {
		g := g
		for _, o := range g.options {
			if !Selectable(o) {
				continue
			}
			o := o
			sc.Bind(o, g.Label(o), func() tea.Cmd {
				g.Activate(o)
				return nil
			})
		}
	}
	sc.Bind(m.submit, markup.Text(m.submit), m.Submit)

	m.projector.Project(m.sel)
	m.log.Debugw("selection screen bound", "selection", m.Fingerprint())
	return m, nil
}

func (m *Machine) ID() uuid.UUID { return m.id }

// Selection returns a copy of the current selection.
func (m *Machine) Selection() Selection { return m.sel }

func (m *Machine) Date() *Group  { return m.date }
func (m *Machine) Staff() *Group { return m.staff }
func (m *Machine) Time() *Group  { return m.time }

// Fingerprint identifies the current selection in logs.
func (m *Machine) Fingerprint() string {
	return hash.Fingerprint(m.sel)
}

// Submit asks for the confirmation screen. Defaults are always valid, so
// nothing is checked first.
func (m *Machine) Submit() tea.Cmd {
	m.log.Infow("booking submitted",
		"date", m.sel.DateTime(),
		"staff", m.sel.StaffName,
		"selection", m.Fingerprint())
	return m.nav.Navigate(routes.AppointmentConfirmation)
}

func (m *Machine) changed() {
	m.projector.Project(m.sel)
	m.log.Debugw("selection changed", "selection", m.Fingerprint())
}
