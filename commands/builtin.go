// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package commands

import (
	"errors"

	"bvberber/args"
	"bvberber/navigation"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	ErrMissingRoute = errors.New("usage: go <screen>")
	ErrNoHistory    = errors.New("no previous screen")
)

// Builtins returns the default command set.
func Builtins() []Command {
	goCmd := Go{}
	quit := Quit{}
	return []Command{
		goCmd,
		Alias{name: "open", target: goCmd},
		Back{},
		Home{},
		quit,
		Alias{name: "q", target: quit},
	}
}

// Go navigates to the route named by its first argument.
type Go struct{}

func (Go) Name() string        { return "go" }
func (Go) Description() string { return "Open a screen by name" }

func (Go) Execute(ctx Context, a args.Args) tea.Cmd {
	route := navigation.Trim(a.Positional(0))
	if route == "" {
		return errorCmd(ErrMissingRoute)
	}
	return ctx.Target.Navigate(route)
}

type Back struct{}

func (Back) Name() string        { return "back" }
func (Back) Description() string { return "Return to the previous screen" }

func (Back) Execute(ctx Context, _ args.Args) tea.Cmd {
	if !ctx.Target.CanGoBack() {
		return errorCmd(ErrNoHistory)
	}
	return ctx.Target.Back()
}

type Home struct{}

func (Home) Name() string        { return "home" }
func (Home) Description() string { return "Open the home screen" }

func (Home) Execute(ctx Context, _ args.Args) tea.Cmd {
	return ctx.Target.Navigate(ctx.Home)
}

type Quit struct{}

func (Quit) Name() string        { return "quit" }
func (Quit) Description() string { return "Exit" }

func (Quit) Execute(Context, args.Args) tea.Cmd { return tea.Quit }

// Alias provides another name for a command.
type Alias struct {
	name   string
	target Command
}

func NewAlias(name string, target Command) Alias {
	return Alias{name: name, target: target}
}

func (a Alias) Name() string        { return a.name }
func (a Alias) Description() string { return a.target.Description() }
func (a Alias) Execute(ctx Context, args args.Args) tea.Cmd {
	return a.target.Execute(ctx, args)
}
