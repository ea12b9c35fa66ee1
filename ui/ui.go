// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles (you can override these per-screen if desired)
var (
	FrameTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#13ec5b")).
			Bold(true)

	FrameHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245"))

	FrameBorderColor = lipgloss.Color("#2a4d38")

	// Rainbow colours the history breadcrumb, one style per depth.
	Rainbow = []lipgloss.Style{
		lipgloss.NewStyle().Background(lipgloss.Color("#13ec5b")).Foreground(lipgloss.Color("#102216")),
		lipgloss.NewStyle().Background(lipgloss.Color("#1f6f43")).Foreground(lipgloss.Color("15")),
		lipgloss.NewStyle().Background(lipgloss.Color("#2a4d38")).Foreground(lipgloss.Color("15")),
		lipgloss.NewStyle().Background(lipgloss.Color("238")).Foreground(lipgloss.Color("15")),
	}
)

// RenderFramedBox draws a bordered frame with title, optional header, and content.
// If width <= 0, defaults to content width + padding.
// ANSI sequences in content are preserved.
func RenderFramedBox(title, header, content, footer string, width int) string {
	lines := strings.Split(content, "\n")
	var footerLines []string
	if footer != "" {
		footerLines = strings.Split(footer, "\n")
	}

	contentWidth := lipgloss.Width(header)
	for _, l := range append(lines, footerLines...) {
		if w := lipgloss.Width(l); w > contentWidth {
			contentWidth = w
		}
	}
	if width <= 0 {
		width = contentWidth + 4
	}

	titleStyled := FrameTitleStyle.Render(" " + title + " ")
	borderWidth := width - 2
	borderStyle := lipgloss.NewStyle().Foreground(FrameBorderColor)

	leftPad := max((borderWidth-lipgloss.Width(titleStyled))/2, 0)
	rightPad := max(borderWidth-leftPad-lipgloss.Width(titleStyled), 0)

	boxLines := []string{fmt.Sprintf("%s%s%s%s%s",
		borderStyle.Render("╭"),
		borderStyle.Render(strings.Repeat("─", leftPad)),
		titleStyled,
		borderStyle.Render(strings.Repeat("─", rightPad)),
		borderStyle.Render("╮"),
	)}

	row := func(l string) string {
		return borderStyle.Render("│") + padLine(l, borderWidth) + borderStyle.Render("│")
	}

	if header != "" {
		boxLines = append(boxLines, row(FrameHeaderStyle.Render(header)))
	}
	for _, l := range lines {
		boxLines = append(boxLines, row(l))
	}
	for _, fl := range footerLines {
		boxLines = append(boxLines, row(fl))
	}

	boxLines = append(boxLines, borderStyle.Render("╰"+strings.Repeat("─", borderWidth)+"╯"))
	return strings.Join(boxLines, "\n")
}

// padLine fits a line to width, preserving ANSI sequences
func padLine(line string, width int) string {
	l := lipgloss.Width(line)
	if l >= width {
		return lipgloss.NewStyle().MaxWidth(width).Render(line)
	}
	return line + strings.Repeat(" ", width-l)
}
