// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package booking

import (
	"slices"

	"bvberber/markup"

	"golang.org/x/net/html"
)

// Kind names an option group.
type Kind string

const (
	KindDate  Kind = "date"
	KindStaff Kind = "staff"
	KindTime  Kind = "time"
)

// Markup vocabulary used inside groups.
const (
	attrOption      = "data-option"
	attrUnavailable = "data-unavailable"
	attrPart        = "data-part"
	attrMonth       = "data-month"
	attrBadge       = "data-badge"

	partDayName   = "day-name"
	partDayNum    = "day-num"
	partName      = "name"
	partAvatar    = "avatar"
	partBadgeSlot = "badge-slot"

	ClassActive   = "active"
	ClassInactive = "inactive"
	ClassMuted    = "muted"

	badgeMarkup = `<span data-badge class="badge">✓</span>`
)

// Group is a set of mutually exclusive options, one of which is active.
type Group struct {
	kind     Kind
	options  []*html.Node
	active   *html.Node
	sel      *Selection
	onChange func()
}

func newGroup(kind Kind, container *html.Node, sel *Selection, onChange func()) *Group {
	return &Group{
		kind:     kind,
		options:  markup.All(container, markup.HasAttr(attrOption)),
		sel:      sel,
		onChange: onChange,
	}
}

func (g *Group) Kind() Kind { return g.kind }

// Options returns the group's options in document order.
func (g *Group) Options() []*html.Node { return slices.Clone(g.options) }

// Active returns the active option.
func (g *Group) Active() *html.Node { return g.active }

// Selectable reports whether option may become active.
func Selectable(option *html.Node) bool {
	if _, ok := markup.Attr(option, attrUnavailable); ok {
		return false
	}
	if _, ok := markup.Attr(option, "disabled"); ok {
		return false
	}
	return true
}

// Activate makes option the group's only active option, writes its values into
// the selection and fires the change callback. It reports false, changing
// nothing, for unselectable options and options outside the group.
func (g *Group) Activate(option *html.Node) bool {
	if !g.apply(option) {
		return false
	}
	if g.onChange != nil {
		g.onChange()
	}
	return true
}

func (g *Group) apply(option *html.Node) bool {
	if option == nil || !Selectable(option) || !slices.Contains(g.options, option) {
		return false
	}
	for _, o := range g.options {
		if !Selectable(o) {
			continue
		}
		markup.RemoveClass(o, ClassActive)
		markup.AddClass(o, ClassInactive)
		markup.SetAttr(o, "aria-pressed", "false")
	}
	markup.RemoveClass(option, ClassInactive)
	markup.AddClass(option, ClassActive)
	markup.SetAttr(option, "aria-pressed", "true")
	g.active = option

	g.extract(option)
	if g.kind == KindStaff {
		g.decorateStaff(option)
	}
	return true
}

func (g *Group) extract(option *html.Node) {
	switch g.kind {
	case KindDate:
		if n := part(option, partDayName); n != nil {
			g.sel.DayName = markup.Text(n)
		}
		if n := part(option, partDayNum); n != nil {
			g.sel.DayNum = markup.Text(n)
		}
		if m, ok := markup.Attr(option, attrMonth); ok && m != "" {
			g.sel.Month = m
		}
	case KindStaff:
		if n := part(option, partName); n != nil {
			g.sel.StaffName = markup.Text(n)
		} else {
			g.sel.StaffName = markup.Text(option)
		}
	case KindTime:
		g.sel.Time = markup.Text(option)
	}
}

// decorateStaff leaves exactly one badge, inside the active option, and dims
// every other option's avatar image.
func (g *Group) decorateStaff(active *html.Node) {
	for _, o := range g.options {
		for _, b := range markup.All(o, markup.HasAttr(attrBadge)) {
			markup.Remove(b)
		}
		if avatar := part(o, partAvatar); avatar != nil {
			hasImage := avatar.Data == "img" || markup.First(avatar, markup.Tag("img")) != nil
			markup.ToggleClass(avatar, ClassMuted, o != active && hasImage)
		}
	}
	slot := part(active, partBadgeSlot)
	if slot == nil {
		slot = active
	}
	_, _ = markup.AppendFragment(slot, badgeMarkup)
}

// Label is the option's display text for the focus ring.
func (g *Group) Label(option *html.Node) string {
	switch g.kind {
	case KindDate:
		return markup.Text(part(option, partDayName)) + " " + markup.Text(part(option, partDayNum))
	case KindStaff:
		if n := part(option, partName); n != nil {
			return markup.Text(n)
		}
	}
	return markup.Text(option)
}

// initial picks the option matching the defaults, else the one the markup
// ships active, else the first selectable one.
func (g *Group) initial(defaults Selection) *html.Node {
	for _, o := range g.options {
		if Selectable(o) && g.matches(o, defaults) {
			return o
		}
	}
	for _, o := range g.options {
		if Selectable(o) && markup.HasClass(o, ClassActive) {
			return o
		}
	}
	for _, o := range g.options {
		if Selectable(o) {
			return o
		}
	}
	return nil
}

func (g *Group) matches(option *html.Node, sel Selection) bool {
	switch g.kind {
	case KindDate:
		return markup.Text(part(option, partDayNum)) == sel.DayNum &&
			markup.Text(part(option, partDayName)) == sel.DayName &&
			markup.AttrOr(option, attrMonth, sel.Month) == sel.Month
	case KindStaff:
		return g.Label(option) == sel.StaffName
	default:
		return markup.Text(option) == sel.Time
	}
}

func part(option *html.Node, name string) *html.Node {
	return markup.First(option, markup.AttrEquals(attrPart, name))
}
