package util

import (
	"fmt"
	"strings"
	"time"
)

// SanitizeText trims s, collapses every run of inner whitespace into a single
// space and lower-cases the result. Usernames, novelist names and book titles
// are stored in this form so uniqueness checks ignore cosmetic differences.
func SanitizeText(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s", "120ms").
func FormatDuration(duration time.Duration) string {
	if duration < time.Second {
		return fmt.Sprintf("%dms", duration.Milliseconds())
	}

	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
