// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package markup holds the presentation tree a screen is rendered from.
//
// Fragments are parsed with golang.org/x/net/html into a detached container
// element. Everything that inserts, queries or restyles screen content goes
// through this package.
package markup

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Tree is the content container. Its children are replaced wholesale on
// every insertion, so handlers bound to an older insertion become unreachable.
type Tree struct {
	root *html.Node
}

// New returns an empty container.
func New() *Tree {
	return &Tree{root: container()}
}

// Parse builds a container holding the given fragment.
func Parse(fragment string) (*Tree, error) {
	t := New()
	if err := t.Replace(fragment); err != nil {
		return nil, err
	}
	return t, nil
}

// MustParse is Parse for fragments known to be well formed (tests, constants).
func MustParse(fragment string) *Tree {
	t, err := Parse(fragment)
	if err != nil {
		panic(err)
	}
	return t
}

func container() *html.Node {
	return &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
}

// Root returns the container element.
func (t *Tree) Root() *html.Node { return t.root }

// Replace swaps the container's content for the parsed fragment. The markup is
// inserted verbatim; scripts are kept as inert nodes and never run.
func (t *Tree) Replace(fragment string) error {
	nodes, err := parseFragment(fragment)
	if err != nil {
		return err
	}
	fresh := container()
	for _, n := range nodes {
		fresh.AppendChild(n)
	}
	t.root = fresh
	return nil
}

// HTML renders the container's children back to markup.
func (t *Tree) HTML() string {
	return InnerHTML(t.root)
}

// Hook returns the first element carrying data-hook=name, or nil.
func (t *Tree) Hook(name string) *html.Node {
	return First(t.root, HasHook(name))
}

// Hooks returns every element carrying data-hook=name in document order.
func (t *Tree) Hooks(name string) []*html.Node {
	return All(t.root, HasHook(name))
}

// InnerHTML renders n's children.
func InnerHTML(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		_ = html.Render(&b, c)
	}
	return b.String()
}

// AppendFragment parses fragment and appends the result to n's children.
func AppendFragment(n *html.Node, fragment string) ([]*html.Node, error) {
	nodes, err := parseFragment(fragment)
	if err != nil {
		return nil, err
	}
	for _, c := range nodes {
		n.AppendChild(c)
	}
	return nodes, nil
}

// Remove detaches n from its parent. Detached nodes are ignored.
func Remove(n *html.Node) {
	if n == nil || n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

func parseFragment(fragment string) ([]*html.Node, error) {
	nodes, err := html.ParseFragment(strings.NewReader(fragment), container())
	if err != nil {
		return nil, fmt.Errorf("parse fragment: %w", err)
	}
	return nodes, nil
}
