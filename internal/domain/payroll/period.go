package payroll

import (
	"time"
)

// Period is a calendar-month payroll key in the form "YYYY-MM".
type Period string

const periodLayout = "2006-01"

// ParsePeriod validates and normalizes a "YYYY-MM" string.
func ParsePeriod(s string) (Period, error) {
	t, err := time.Parse(periodLayout, s)
	if err != nil {
		return "", ErrInvalidPeriod
	}
	return Period(t.Format(periodLayout)), nil
}

// PeriodOf returns the period containing the given instant.
func PeriodOf(t time.Time) Period {
	return Period(t.UTC().Format(periodLayout))
}

// Start returns the first instant of the period's month, UTC.
func (p Period) Start() time.Time {
	t, _ := time.Parse(periodLayout, string(p))
	return t
}

// End returns the first instant of the following month, UTC. Ranges over a
// period are [Start, End).
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, 0)
}

func (p Period) String() string {
	return string(p)
}
