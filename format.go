package pagemark

import "fmt"

// FormatTimestamp renders a position in seconds as a zero-padded MM:SS
// timestamp, or HH:MM:SS when the position reaches one hour. Fractional
// seconds are truncated.
func FormatTimestamp(seconds float64) string {
	total := int(seconds)
	if total < 0 {
		total = 0
	}

	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}
