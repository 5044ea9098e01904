package timer

import "fmt"

// FormatClock renders a second count as zero-padded mm:ss (e.g. "25:00",
// "04:59"). Minutes are not wrapped at the hour; a 90 minute interval shows
// as "90:00".
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
