// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package markup

import (
	"slices"
	"strings"

	"golang.org/x/net/html"
)

// Classes returns n's class list.
func Classes(n *html.Node) []string {
	return strings.Fields(AttrOr(n, "class", ""))
}

func HasClass(n *html.Node, class string) bool {
	return slices.Contains(Classes(n), class)
}

// AddClass appends missing classes to n, preserving order.
func AddClass(n *html.Node, classes ...string) {
	list := Classes(n)
	for _, c := range classes {
		if !slices.Contains(list, c) {
			list = append(list, c)
		}
	}
	SetAttr(n, "class", strings.Join(list, " "))
}

func RemoveClass(n *html.Node, classes ...string) {
	list := slices.DeleteFunc(Classes(n), func(c string) bool {
		return slices.Contains(classes, c)
	})
	if len(list) == 0 {
		RemoveAttr(n, "class")
		return
	}
	SetAttr(n, "class", strings.Join(list, " "))
}

// ToggleClass adds class when on is true and removes it otherwise.
func ToggleClass(n *html.Node, class string, on bool) {
	if on {
		AddClass(n, class)
		return
	}
	RemoveClass(n, class)
}
