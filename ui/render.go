// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package ui

import (
	"strings"

	"bvberber/markup"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/net/html"
)

// RenderOptions control how a screen tree is drawn.
type RenderOptions struct {
	Width   int        // wrap width for paragraphs, 0 disables wrapping
	Focused *html.Node // element drawn reversed
	Faint   bool       // whole screen dimmed, used while fading out
}

var (
	h1Style = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#13ec5b"))
	h2Style = lipgloss.NewStyle().Bold(true)
	h3Style = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250")).MarginTop(1)

	activeStyle      = lipgloss.NewStyle().Background(lipgloss.Color("#13ec5b")).Foreground(lipgloss.Color("#102216")).Bold(true)
	unavailableStyle = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	mutedStyle       = lipgloss.NewStyle().Faint(true)
	linkStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#13ec5b")).Underline(true)
	badgeStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#13ec5b")).Bold(true)
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)

	cardStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)
	activeCardStyle = cardStyle.BorderForeground(lipgloss.Color("#13ec5b"))
)

var blockTags = map[string]bool{
	"div": true, "section": true, "header": true, "footer": true, "main": true,
	"nav": true, "article": true, "ul": true, "ol": true, "li": true, "p": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

var skippedTags = map[string]bool{"script": true, "style": true, "template": true}

// RenderTree draws the container's content as terminal lines.
func RenderTree(root *html.Node, opts RenderOptions) string {
	r := renderer{opts: opts}
	out := r.children(root)
	if opts.Faint {
		return mutedStyle.Render(out)
	}
	return out
}

type renderer struct {
	opts RenderOptions
}

// children lays n's children out vertically, merging runs of inline content
// into single lines.
func (r renderer) children(n *html.Node) string {
	var blocks []string
	var run strings.Builder

	flush := func() {
		if s := strings.TrimSpace(run.String()); s != "" {
			blocks = append(blocks, r.wrap(s))
		}
		run.Reset()
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && skippedTags[c.Data] {
			continue
		}
		if c.Type == html.ElementNode && blockTags[c.Data] {
			flush()
			if b := r.block(c); b != "" {
				blocks = append(blocks, b)
			}
			continue
		}
		run.WriteString(r.inline(c))
	}
	flush()
	return strings.Join(blocks, "\n")
}

func (r renderer) block(n *html.Node) string {
	var body string
	if markup.AttrOr(n, "data-layout", "") == "row" {
		body = r.row(n)
	} else {
		body = r.children(n)
	}
	if body == "" {
		return ""
	}

	switch n.Data {
	case "h1":
		body = h1Style.Render(body)
	case "h2":
		body = h2Style.Render(body)
	case "h3", "h4", "h5", "h6":
		body = h3Style.Render(body)
	case "li":
		body = "• " + body
	}

	if _, ok := markup.Attr(n, "data-option"); ok {
		style := cardStyle
		if markup.HasClass(n, "active") {
			style = activeCardStyle
		}
		body = style.Render(body)
	}
	if markup.HasClass(n, "error-screen") {
		body = errorStyle.Render(body)
	}
	return r.decorate(n, body)
}

// row lays element children out side by side.
func (r renderer) row(n *html.Node) string {
	var cells []string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		var cell string
		switch {
		case c.Type == html.ElementNode && skippedTags[c.Data]:
			continue
		case c.Type == html.ElementNode && blockTags[c.Data]:
			cell = r.block(c)
		default:
			cell = strings.TrimSpace(r.inline(c))
		}
		if cell == "" {
			continue
		}
		if len(cells) > 0 {
			cells = append(cells, " ")
		}
		cells = append(cells, cell)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, cells...)
}

func (r renderer) inline(n *html.Node) string {
	switch n.Type {
	case html.TextNode:
		return collapse(n.Data)
	case html.ElementNode:
	default:
		return ""
	}

	if n.Data == "img" {
		return r.decorate(n, "◉")
	}
	if _, ok := markup.Attr(n, "data-badge"); ok {
		return badgeStyle.Render(" ✓")
	}
	if n.Data == "br" {
		return "\n"
	}

	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && blockTags[c.Data] {
			b.WriteString(" " + r.block(c) + " ")
			continue
		}
		b.WriteString(r.inline(c))
	}
	text := strings.TrimSpace(b.String())

	switch n.Data {
	case "button":
		text = "[ " + text + " ]"
	case "a":
		text = linkStyle.Render(text)
	case "b", "strong":
		text = h2Style.Render(text)
	}
	if markup.HasClass(n, "active") {
		text = activeStyle.Render(text)
	}
	return r.decorate(n, text)
}

// decorate applies the state styles every element shares.
func (r renderer) decorate(n *html.Node, s string) string {
	if _, ok := markup.Attr(n, "data-unavailable"); ok {
		s = unavailableStyle.Render(s)
	}
	if markup.HasClass(n, "muted") || markup.HasClass(n, "muted-text") {
		s = mutedStyle.Render(s)
	}
	if r.opts.Focused != nil && n == r.opts.Focused {
		s = lipgloss.NewStyle().Reverse(true).Render(s)
	}
	return s
}

func (r renderer) wrap(s string) string {
	if r.opts.Width <= 0 || lipgloss.Width(s) <= r.opts.Width {
		return s
	}
	return lipgloss.NewStyle().Width(r.opts.Width).Render(s)
}

// collapse folds whitespace runs to single spaces, keeping a leading or
// trailing space so adjacent inline elements stay separated.
func collapse(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		if s == "" {
			return ""
		}
		return " "
	}
	out := strings.Join(fields, " ")
	if strings.TrimLeft(s[:1], " \t\n\r") == "" {
		out = " " + out
	}
	if strings.TrimRight(s[len(s)-1:], " \t\n\r") == "" {
		out += " "
	}
	return out
}
