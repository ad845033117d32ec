package attendance

import "math"

// WorkedHours derives the hour breakdown for a record. scheduledStart and
// scheduledEnd are the matching shift's local "HH:MM" strings; pass empty
// strings when no shift exists, in which case all worked time is regular.
//
// Overtime is duration-based: time worked beyond the shift's length, not
// time outside the shift's window. Both operands are durations, so no
// timezone offset applies here.
func WorkedHours(rec AttendanceRecord, scheduledStart, scheduledEnd string) (total, regular, overtime float64) {
	if rec.ActualStart == nil || rec.ActualEnd == nil {
		return 0, 0, 0
	}

	worked := rec.ActualEnd.Sub(*rec.ActualStart).Hours()
	if worked < 0 {
		worked = 0
	}
	total = round2(worked)

	startMins, okStart := ParseClock(scheduledStart)
	endMins, okEnd := ParseClock(scheduledEnd)
	if !okStart || !okEnd || endMins <= startMins {
		return total, total, 0
	}

	scheduled := float64(endMins-startMins) / 60.0
	regular = round2(math.Min(worked, scheduled))
	overtime = round2(math.Max(0, worked-scheduled))
	return total, regular, overtime
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
