package schedule

import "time"

// ScheduledShift is one expected shift for one employee on one calendar day.
// StartTime and EndTime are local wall-clock strings ("HH:MM") with no
// timezone of their own; they are interpreted in the organization's fixed
// local offset. Shifts are joined to attendance records by (employee, date)
// equality, there is no foreign key between the two.
type ScheduledShift struct {
	ID         string
	EmployeeID string
	Date       time.Time // UTC midnight of the calendar day
	StartTime  string    // "HH:MM"
	EndTime    string    // "HH:MM"
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DateKey returns the shift's calendar day as "YYYY-MM-DD".
func (s ScheduledShift) DateKey() string {
	return s.Date.Format("2006-01-02")
}
