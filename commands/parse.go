// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package commands

import (
	"strings"

	"bvberber/args"
)

// Parse takes a full input string like "go services --replace" and returns
// the matching command and its parsed arguments. Multi-word names win over
// shorter prefixes.
func (r *Registry) Parse(input string) (Command, args.Args, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, args.Args{}, ErrEmptyCommand
	}

	parts := strings.Fields(input)

	for i := len(parts); i > 0; i-- {
		if c, found := r.Get(strings.Join(parts[:i], " ")); found {
			return c, parseArgs(parts[i:]), nil
		}
	}
	return nil, args.Args{}, &UnknownCommandError{Input: input}
}

// parseArgs separates flags (--flag or --flag=value) from positionals.
func parseArgs(parts []string) args.Args {
	a := args.Args{
		Flags:       make(map[string]string),
		Positionals: []string{},
	}

	for _, p := range parts {
		if strings.HasPrefix(p, "--") {
			p = strings.TrimPrefix(p, "--")
			if eq := strings.Index(p, "="); eq != -1 {
				a.Flags[p[:eq]] = p[eq+1:]
			} else {
				a.Flags[p] = "true"
			}
		} else {
			a.Positionals = append(a.Positionals, p)
		}
	}

	return a
}
