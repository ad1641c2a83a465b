package ui

import (
	"testing"
	"time"
)

// TestFormatRelative verifies the dashboard time buckets.
func TestFormatRelative(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		at   time.Time
		want string
	}{
		{now.Add(-10 * time.Second), "just now"},
		{now.Add(-time.Minute), "1 minute ago"},
		{now.Add(-5 * time.Minute), "5 minutes ago"},
		{now.Add(-2 * time.Hour), "2 hours ago"},
		{now.Add(-72 * time.Hour), "3 days ago"},
		{time.Time{}, "never"},
	}
	for _, c := range cases {
		if got := FormatRelative(now, c.at); got != c.want {
			t.Fatalf("FormatRelative(%v): expected %q, got %q", c.at, c.want, got)
		}
	}
}

// TestTruncate verifies cell truncation keeps short text intact.
func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Fatalf("expected untouched text, got %q", got)
	}
	if got := Truncate("a longer piece of text", 10); got != "a longe..." {
		t.Fatalf("unexpected truncation %q", got)
	}
}

// TestFormatCount verifies singular and plural nouns.
func TestFormatCount(t *testing.T) {
	if got := FormatCount(1, "response"); got != "1 response" {
		t.Fatalf("unexpected %q", got)
	}
	if got := FormatCount(0, "response"); got != "0 responses" {
		t.Fatalf("unexpected %q", got)
	}
}

// TestStylizeNoColor verifies the no-color escape hatch returns the
// raw text.
func TestStylizeNoColor(t *testing.T) {
	if got := Stylize("plain", true, ColorAccent); got != "plain" {
		t.Fatalf("expected raw text, got %q", got)
	}
}
