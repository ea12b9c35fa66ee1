// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package router

import "time"

// TransitionDoneMsg ends the exit transition of navigation Seq.
type TransitionDoneMsg struct {
	Seq uint64
}

// FetchedMsg carries the result of navigation Seq's resource fetch.
type FetchedMsg struct {
	Seq     uint64
	Route   string
	Path    string
	Body    string
	Err     error
	Elapsed time.Duration
}

// ContentChangedMsg is emitted after new content was installed and bound.
type ContentChangedMsg struct {
	Seq   uint64
	Route string
	OK    bool
}

// ScrollTopMsg asks the content viewport to reset to the top.
type ScrollTopMsg struct{}
