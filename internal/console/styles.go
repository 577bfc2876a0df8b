// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package console

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// styles are bound to the output's renderer, so colours are dropped when
// the output is not a terminal.
type styles struct {
	banner  lipgloss.Style
	header  lipgloss.Style
	rule    lipgloss.Style
	menuKey lipgloss.Style
	prompt  lipgloss.Style
	title   lipgloss.Style
	label   lipgloss.Style
	muted   lipgloss.Style
	tag     lipgloss.Style
	info    lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
}

func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)

	return styles{
		banner:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
		header:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("12")).Padding(0, 2),
		rule:    r.NewStyle().Foreground(lipgloss.Color("12")),
		menuKey: r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		prompt:  r.NewStyle().Foreground(lipgloss.Color("15")),
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		label:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		muted:   r.NewStyle().Faint(true),
		tag:     r.NewStyle().Foreground(lipgloss.Color("13")),
		info:    r.NewStyle().Foreground(lipgloss.Color("12")),
		success: r.NewStyle().Foreground(lipgloss.Color("10")),
		failure: r.NewStyle().Foreground(lipgloss.Color("9")),
	}
}
