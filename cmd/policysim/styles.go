package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	accent      = lipgloss.Color("#8BC34A")
	muted       = lipgloss.Color("#6B7280")
	destructive = lipgloss.Color("#E53935")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	headingStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(muted)
	goodStyle    = lipgloss.NewStyle().Foreground(accent)
	badStyle     = lipgloss.NewStyle().Foreground(destructive)
)

const barWidth = 30

// supportBar draws a fixed-width bar for a 0–100 figure.
func supportBar(pct int) string {
	pct = max(0, min(100, pct))
	filled := pct * barWidth / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	style := goodStyle
	if pct < 50 {
		style = badStyle
	}
	return fmt.Sprintf("%s %3d%%", style.Render(bar), pct)
}
