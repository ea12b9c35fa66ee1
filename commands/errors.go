// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package commands

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

var ErrEmptyCommand = errors.New("empty command")

// UnknownCommandError is returned by Parse when no registered name matches.
type UnknownCommandError struct {
	Input string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command: %s", e.Input)
}

// ErrorMsg carries a command failure back to the command bar.
type ErrorMsg struct {
	Err error
}

func errorCmd(err error) tea.Cmd {
	return func() tea.Msg { return ErrorMsg{Err: err} }
}
