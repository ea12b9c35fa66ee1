// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package ui

import (
	"github.com/briandowns/spinner"
)

// DefaultSpinnerCharsetIndex is the charset index used for screen transitions.
const DefaultSpinnerCharsetIndex = 14

// SpinnerCharAt returns the spinner character for the given frame index.
// Falls back to an ellipsis if spinner charset is not available.
func SpinnerCharAt(frame int) string {
	frames := spinner.CharSets[DefaultSpinnerCharsetIndex]
	if len(frames) == 0 {
		return "…"
	}
	if frame < 0 {
		frame = -frame
	}
	return frames[frame%len(frames)]
}
