// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package booking drives the appointment selection screen: three single-select
// option groups (date, staff, time), a live summary and a submit action.
package booking

import "fmt"

// Selection is the user's current, unconfirmed choice.
type Selection struct {
	DayName   string
	DayNum    string
	Month     string
	StaffName string
	Time      string
}

// DefaultSelection matches the options the selection screen ships active.
func DefaultSelection() Selection {
	return Selection{
		DayName:   "Pzt",
		DayNum:    "23",
		Month:     "Ekim",
		StaffName: "Baran V.",
		Time:      "10:00",
	}
}

// DateTime is the date and time summary line.
func (s Selection) DateTime() string {
	return fmt.Sprintf("%s %s %s, %s", s.DayNum, s.Month, s.DayName, s.Time)
}

// Staff is the staff summary line.
func (s Selection) Staff() string {
	return "Personel: " + s.StaffName
}
