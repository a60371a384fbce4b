package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds for
// durations less than a second, and the default string representation otherwise.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// FormatETA renders a remaining-time estimate at minute or second granularity.
// Non-positive estimates mean no rate is known yet.
func FormatETA(eta time.Duration) string {
	switch {
	case eta <= 0:
		return "calculating..."
	case eta < time.Second:
		return "< 1s"
	case eta < time.Minute:
		return fmt.Sprintf("%ds", int(eta.Seconds()))
	case eta < time.Hour:
		m := int(eta.Minutes())
		s := int(eta.Seconds()) % 60
		if s == 0 {
			return fmt.Sprintf("%dm", m)
		}
		return fmt.Sprintf("%dm%ds", m, s)
	default:
		h := int(eta.Hours())
		m := int(eta.Minutes()) % 60
		if m == 0 {
			return fmt.Sprintf("%dh", h)
		}
		return fmt.Sprintf("%dh%dm", h, m)
	}
}

// FormatRate renders an operation rate such as "1.25M ops/s".
func FormatRate(ops uint64, d time.Duration) string {
	if d <= 0 {
		return "n/a"
	}
	rate := float64(ops) / d.Seconds()
	switch {
	case rate >= 1e9:
		return fmt.Sprintf("%.2fG ops/s", rate/1e9)
	case rate >= 1e6:
		return fmt.Sprintf("%.2fM ops/s", rate/1e6)
	case rate >= 1e3:
		return fmt.Sprintf("%.2fk ops/s", rate/1e3)
	}
	return fmt.Sprintf("%.0f ops/s", rate)
}
