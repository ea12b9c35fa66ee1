// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package scope tracks the activation handlers one screen registered, so they
// can all be unbound together before the next screen is installed.
package scope

import (
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/net/html"
)

// Handler runs when a bound element is activated.
type Handler func() tea.Cmd

// Target is a bound element as seen by the focus ring.
type Target struct {
	Node  *html.Node
	Label string
}

type binding struct {
	target   Target
	handlers []Handler
}

// Scope holds the bindings made for one inserted fragment.
type Scope struct {
	route    string
	bindings []*binding
	byNode   map[*html.Node]*binding
	disposed bool
}

func New(route string) *Scope {
	return &Scope{route: route, byNode: map[*html.Node]*binding{}}
}

// Route is the route the scope was opened for.
func (s *Scope) Route() string { return s.route }

// Bind registers fn for activations of n. Binding the same node twice keeps
// both handlers, in order. Bind on a disposed scope is ignored.
func (s *Scope) Bind(n *html.Node, label string, fn Handler) {
	if s == nil || s.disposed || n == nil || fn == nil {
		return
	}
	if b, ok := s.byNode[n]; ok {
		b.handlers = append(b.handlers, fn)
		return
	}
	b := &binding{target: Target{Node: n, Label: label}, handlers: []Handler{fn}}
	s.byNode[n] = b
	s.bindings = append(s.bindings, b)
}

// Bound reports whether n has at least one handler.
func (s *Scope) Bound(n *html.Node) bool {
	if s == nil || s.disposed {
		return false
	}
	_, ok := s.byNode[n]
	return ok
}

// Activate runs every handler bound to n and batches their commands.
func (s *Scope) Activate(n *html.Node) tea.Cmd {
	if s == nil || s.disposed {
		return nil
	}
	b, ok := s.byNode[n]
	if !ok {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(b.handlers))
	for _, h := range b.handlers {
		cmds = append(cmds, h())
	}
	return tea.Batch(cmds...)
}

// Targets returns bound elements in binding order.
func (s *Scope) Targets() []Target {
	if s == nil || s.disposed {
		return nil
	}
	out := make([]Target, len(s.bindings))
	for i, b := range s.bindings {
		out[i] = b.target
	}
	return out
}

// Len is the number of bound elements.
func (s *Scope) Len() int {
	if s == nil || s.disposed {
		return 0
	}
	return len(s.bindings)
}

// Dispose unbinds everything. It is safe to call more than once.
func (s *Scope) Dispose() {
	if s == nil {
		return
	}
	s.disposed = true
	s.bindings = nil
	s.byNode = nil
}

func (s *Scope) Disposed() bool { return s == nil || s.disposed }
