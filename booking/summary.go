// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package booking

import (
	"bvberber/markup"

	"golang.org/x/net/html"
)

// Summary slot hooks
const (
	HookSummaryDateTime = "summary-datetime"
	HookSummaryStaff    = "summary-staff"
)

// Projector writes the summary lines into their display slots. Either slot may
// be missing from the markup.
type Projector struct {
	dateTime *html.Node
	staff    *html.Node
}

func NewProjector(tree *markup.Tree) *Projector {
	return &Projector{
		dateTime: tree.Hook(HookSummaryDateTime),
		staff:    tree.Hook(HookSummaryStaff),
	}
}

// Project overwrites both slots from sel.
func (p *Projector) Project(sel Selection) {
	if p.dateTime != nil {
		markup.SetText(p.dateTime, sel.DateTime())
	}
	if p.staff != nil {
		markup.SetText(p.staff, sel.Staff())
	}
}
