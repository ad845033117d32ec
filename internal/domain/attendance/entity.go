package attendance

import "time"

// AttendanceRecord is one employee-day of clock evidence. Date is anchored at
// UTC midnight; ActualStart/ActualEnd are absolute UTC instants. LateMinutes
// and the hour fields are derived and recomputed whenever the clock times or
// the matching shift's scheduled start change.
type AttendanceRecord struct {
	ID            string
	EmployeeID    string
	Date          time.Time // UTC midnight of the calendar day
	ActualStart   *time.Time
	ActualEnd     *time.Time
	LateMinutes   int
	TotalHours    float64
	RegularHours  float64
	OvertimeHours float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsWorkedShift reports whether the record counts as a worked shift. The only
// evidence that matters is a recorded clock-in; a missing clock-out still
// counts. Every worked-shift count in accrual and penalty computation must go
// through this predicate.
func (a AttendanceRecord) IsWorkedShift() bool {
	return a.ActualStart != nil
}

// DateKey returns the record's calendar day as "YYYY-MM-DD".
func (a AttendanceRecord) DateKey() string {
	return a.Date.Format("2006-01-02")
}
