// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package markup

import (
	"strings"

	"golang.org/x/net/html"
)

// Matcher selects element nodes.
type Matcher func(n *html.Node) bool

// HasHook matches elements with data-hook=name.
func HasHook(name string) Matcher {
	return func(n *html.Node) bool {
		v, ok := Attr(n, "data-hook")
		return ok && v == name
	}
}

// HasAttr matches elements that carry key, whatever its value.
func HasAttr(key string) Matcher {
	return func(n *html.Node) bool {
		_, ok := Attr(n, key)
		return ok
	}
}

// AttrEquals matches elements whose key attribute equals val.
func AttrEquals(key, val string) Matcher {
	return func(n *html.Node) bool {
		v, ok := Attr(n, key)
		return ok && v == val
	}
}

// Tag matches elements by tag name.
func Tag(name string) Matcher {
	return func(n *html.Node) bool { return n.Data == name }
}

// Walk visits n and its descendants depth first, in document order. Returning
// false from fn skips the node's subtree.
func Walk(n *html.Node, fn func(*html.Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		Walk(c, fn)
	}
}

// First returns the first descendant element of n (n excluded) matching m.
func First(n *html.Node, m Matcher) *html.Node {
	var found *html.Node
	Walk(n, func(c *html.Node) bool {
		if found != nil {
			return false
		}
		if c != n && c.Type == html.ElementNode && m(c) {
			found = c
			return false
		}
		return true
	})
	return found
}

// All returns every descendant element of n (n excluded) matching m.
func All(n *html.Node, m Matcher) []*html.Node {
	var out []*html.Node
	Walk(n, func(c *html.Node) bool {
		if c != n && c.Type == html.ElementNode && m(c) {
			out = append(out, c)
		}
		return true
	})
	return out
}

// Attr returns the value of key on n.
func Attr(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// AttrOr returns the value of key, or def when absent.
func AttrOr(n *html.Node, key, def string) string {
	if v, ok := Attr(n, key); ok {
		return v
	}
	return def
}

// SetAttr sets key to val on n, adding the attribute when missing.
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// RemoveAttr drops key from n.
func RemoveAttr(n *html.Node, key string) {
	out := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			continue
		}
		out = append(out, a)
	}
	n.Attr = out
}

// Text returns the whitespace-normalised text content of n.
func Text(n *html.Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	Walk(n, func(c *html.Node) bool {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
			b.WriteByte(' ')
		}
		return true
	})
	return strings.Join(strings.Fields(b.String()), " ")
}

// SetText replaces n's children with a single text node.
func SetText(n *html.Node, text string) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}
