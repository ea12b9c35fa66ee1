// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package routes is the static table mapping route names to markup resources.
package routes

import (
	"errors"
	"fmt"
)

// Route names
const (
	Welcome                 = "welcome"
	Services                = "services"
	Appointments            = "appointments"
	Profile                 = "profile"
	AppointmentSelection    = "appointment_selection"
	AppointmentConfirmation = "appointment_confirmation"
)

// ErrUnknownRoute is returned when a route name has no table entry.
var ErrUnknownRoute = errors.New("route not found")

type entry struct {
	name string
	path string
}

// Table is an ordered, read-only mapping of route name to resource path.
type Table struct {
	entries []entry
	index   map[string]int
	home    string
}

// New builds a table from name/path pairs. The first route is home unless
// WithHome is applied.
func New(pairs ...[2]string) *Table {
	t := &Table{index: make(map[string]int, len(pairs))}
	for _, p := range pairs {
		if _, dup := t.index[p[0]]; dup {
			continue
		}
		t.index[p[0]] = len(t.entries)
		t.entries = append(t.entries, entry{name: p[0], path: p[1]})
	}
	if len(t.entries) > 0 {
		t.home = t.entries[0].name
	}
	return t
}

// Default is the application's route table, every screen under views/.
func Default() *Table {
	return New(
		[2]string{Welcome, "views/welcome.html"},
		[2]string{Services, "views/services.html"},
		[2]string{Appointments, "views/appointments.html"},
		[2]string{Profile, "views/profile.html"},
		[2]string{AppointmentSelection, "views/appointment_selection.html"},
		[2]string{AppointmentConfirmation, "views/appointment_confirmation.html"},
	)
}

// WithHome returns a copy of t using home as the fallback route. Unknown names
// are rejected.
func (t *Table) WithHome(home string) (*Table, error) {
	if _, ok := t.index[home]; !ok {
		return nil, fmt.Errorf("home %q: %w", home, ErrUnknownRoute)
	}
	cp := *t
	cp.home = home
	return &cp, nil
}

// Resolve returns the resource path for name.
func (t *Table) Resolve(name string) (string, error) {
	i, ok := t.index[name]
	if !ok {
		return "", fmt.Errorf("%q: %w", name, ErrUnknownRoute)
	}
	return t.entries[i].path, nil
}

func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Home is the route used when the navigation fragment is empty.
func (t *Table) Home() string { return t.home }

// Names returns the route names in table order.
func (t *Table) Names() []string {
	out := make([]string, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.name
	}
	return out
}

// IsImmersive reports whether the route hides the persistent navigation bar.
func IsImmersive(name string) bool {
	return name == AppointmentSelection || name == AppointmentConfirmation
}
