// Package ui holds helpers shared by the screen packages: lipgloss
// styling with a no-color escape hatch and display formatting.
package ui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Shared palette for the screens.
const (
	ColorAccent = lipgloss.Color("33")
	ColorMuted  = lipgloss.Color("244")
	ColorError  = lipgloss.Color("196")
	ColorOK     = lipgloss.Color("42")
)

// Stylize colors text unless noColor is set.
func Stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

// StylizeBold renders bold colored text unless noColor is set.
func StylizeBold(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color).Render(text)
}

// FormatRelative renders how long ago a timestamp was, dashboard
// style: "just now", "5 minutes ago", "2 days ago".
func FormatRelative(now, t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d.Minutes()), "minute") + " ago"
	case d < 24*time.Hour:
		return plural(int(d.Hours()), "hour") + " ago"
	default:
		return plural(int(d.Hours()/24), "day") + " ago"
	}
}

// plural renders "1 minute" or "3 minutes".
func plural(n int, unit string) string {
	if n <= 1 {
		n = 1
	}
	s := strconv.Itoa(n) + " " + unit
	if n > 1 {
		s += "s"
	}
	return s
}

// Truncate shortens text for table cells.
func Truncate(text string, limit int) string {
	if limit < 4 || len(text) <= limit {
		return text
	}
	return text[:limit-3] + "..."
}

// FormatCount renders a count with a singular or plural noun.
func FormatCount(n int, noun string) string {
	s := strconv.Itoa(n) + " " + noun
	if n != 1 {
		s += "s"
	}
	return s
}
