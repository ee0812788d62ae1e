package journey

import (
	"fmt"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// AddMinutes adds n minutes to an HH:MM wall-clock time, wrapping
// across midnight. No date rollover is tracked at the leg level, so
// "23:50" plus 30 yields "00:20".
func AddMinutes(hhmm string, n int) string {
	h, m := parseClock(hhmm)
	total := (h*60 + m + n) % minutesPerDay
	if total < 0 {
		total += minutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// MinutesBetween returns the wall-clock minutes from dep to arr,
// treating a negative difference as an overnight journey.
func MinutesBetween(dep, arr string) int {
	dh, dm := parseClock(dep)
	ah, am := parseClock(arr)
	d := (ah*60 + am) - (dh*60 + dm)
	if d < 0 {
		d += minutesPerDay
	}
	return d
}

// FormatDuration renders minutes as "{h}h {m}m", omitting the hour part
// when there are no whole hours and the minute part when it is zero.
func FormatDuration(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60

	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

func parseClock(hhmm string) (hour, minute int) {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0, 0
	}
	hour, _ = strconv.Atoi(parts[0])
	minute, _ = strconv.Atoi(parts[1])
	return hour, minute
}
