package timefmt

import (
	"fmt"
	"time"
)

// Clock formats a duration as MM:SS, or HH:MM:SS from one hour up.
// Negative durations are clamped to zero.
func Clock(value time.Duration) string {
	if value < 0 {
		value = 0
	}
	seconds := int(value.Seconds())
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	seconds = seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
