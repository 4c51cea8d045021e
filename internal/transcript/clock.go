package transcript

import "fmt"

// FormatTimestamp renders seconds as [M:SS] or [H:MM:SS].
func FormatTimestamp(seconds float64) string {
	return "[" + formatClock(seconds) + "]"
}

// FormatDuration renders seconds as M:SS or H:MM:SS.
func FormatDuration(seconds float64) string {
	return formatClock(seconds)
}

func formatClock(seconds float64) string {
	h, m, s := splitClock(seconds)
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// splitClock truncates to whole seconds; fractions are dropped, not rounded.
func splitClock(seconds float64) (h, m, s int64) {
	if seconds < 0 {
		seconds = 0
	}
	total := int64(seconds)
	return total / 3600, (total % 3600) / 60, total % 60
}
