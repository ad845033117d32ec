package attendance

import (
	"strconv"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

// LateMinutes computes how many minutes after the scheduled shift start the
// employee clocked in. actualStartUTC is the stored UTC instant,
// scheduledStart a local "HH:MM" string, localOffsetMinutes the deployment's
// fixed UTC offset (e.g. +300 for UTC+5).
//
// A missing or malformed scheduled start yields 0: employees are not
// penalized for gaps in schedule data. Shifts never cross local midnight, so
// only the forward day wrap is applied.
//
// The instant is normalized to UTC first; pgx scans timestamptz values into
// the process-local zone, and the configured offset must be the only offset
// applied.
func LateMinutes(actualStartUTC time.Time, scheduledStart string, localOffsetMinutes int) int {
	scheduled, ok := ParseClock(scheduledStart)
	if !ok {
		return 0
	}

	utc := actualStartUTC.UTC()
	actual := utc.Hour()*60 + utc.Minute() + localOffsetMinutes
	if actual >= minutesPerDay {
		actual -= minutesPerDay
	}

	if actual <= scheduled {
		return 0
	}
	return actual - scheduled
}

// ParseClock parses an "HH:MM" wall-clock string into minutes since midnight.
func ParseClock(s string) (int, bool) {
	hh, mm, found := strings.Cut(s, ":")
	if !found {
		return 0, false
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}
