// Package commands implements the command bar's verbs.
package commands

import (
	"sort"
	"strings"

	"bvberber/args"

	tea "github.com/charmbracelet/bubbletea"
)

// Target is what commands act on, normally the router.
type Target interface {
	Navigate(route string) tea.Cmd
	Back() tea.Cmd
	CanGoBack() bool
}

type Context struct {
	Target Target
	Home   string
}

type Command interface {
	Name() string
	Description() string
	Execute(ctx Context, a args.Args) tea.Cmd
}

// Registry maps command names, aliases included, to commands.
type Registry struct {
	commands map[string]Command
}

func NewRegistry(cmds ...Command) *Registry {
	r := &Registry{commands: map[string]Command{}}
	for _, c := range cmds {
		r.Register(c)
	}
	return r
}

// Register adds cmd under its name, replacing any earlier command with the
// same name.
func (r *Registry) Register(cmd Command) {
	r.commands[cmd.Name()] = cmd
}

func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// All returns every registered command sorted by name.
func (r *Registry) All() []Command {
	cmds := make([]Command, 0, len(r.commands))
	for _, c := range r.commands {
		cmds = append(cmds, c)
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name() < cmds[j].Name() })
	return cmds
}

// Names returns every registered name sorted.
func (r *Registry) Names() []string {
	return r.Suggest("")
}

// Suggest returns all command names that start with a given prefix
func (r *Registry) Suggest(prefix string) []string {
	var out []string
	for name := range r.commands {
		if prefix == "" || strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
