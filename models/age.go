package models

import (
	"fmt"
	"time"
)

// RelativeAge renders a human-readable age for a record timestamp, as it
// appears in prompts and in the report ("3 hrs ago", "Yesterday",
// "Feb 20"). A zero timestamp renders as an empty string.
func RelativeAge(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	delta := now.Sub(t)
	switch {
	case delta < time.Hour:
		return "< 1 hr ago"
	case delta < 24*time.Hour:
		return fmt.Sprintf("%d hrs ago", int(delta.Hours()))
	case delta < 48*time.Hour:
		return "Yesterday"
	default:
		return t.Format("Jan 2")
	}
}
