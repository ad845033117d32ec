package calendar

import (
	"context"
	"log/slog"
	"time"
)

// HolidaySource supplies the organization's holiday calendar. It is an
// external collaborator; a failing or empty source must never make payroll
// computation fail.
type HolidaySource interface {
	// HolidaysInRange returns holiday dates with from <= date < to.
	HolidaysInRange(ctx context.Context, from, to time.Time) ([]time.Time, error)
}

// Service counts working days: weekdays adjusted by the holiday calendar.
type Service struct {
	holidays HolidaySource
}

func New(holidays HolidaySource) *Service {
	return &Service{holidays: holidays}
}

// WorkingDaysInMonth returns the number of working days in the month
// containing monthStart. If the holiday source fails, or the adjusted count
// comes out non-positive, the plain Mon-Fri weekday count is used instead.
// Every accrual call site goes through here, so the fallback is uniform.
func (s *Service) WorkingDaysInMonth(ctx context.Context, monthStart time.Time) int {
	first := time.Date(monthStart.Year(), monthStart.Month(), 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)

	weekdays := WeekdayCount(first)

	holidays, err := s.holidays.HolidaysInRange(ctx, first, next)
	if err != nil {
		slog.Warn("holiday calendar unavailable, falling back to weekday count",
			"month", first.Format("2006-01"), "error", err)
		return weekdays
	}

	count := weekdays
	for _, h := range holidays {
		if isWeekday(h) {
			count--
		}
	}

	if count <= 0 {
		return weekdays
	}
	return count
}

// IsWorkingDay classifies a single date: a weekday that is not a holiday.
// Holiday lookup failures degrade to the weekday classification.
func (s *Service) IsWorkingDay(ctx context.Context, date time.Time) bool {
	if !isWeekday(date) {
		return false
	}

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	holidays, err := s.holidays.HolidaysInRange(ctx, day, day.AddDate(0, 0, 1))
	if err != nil {
		return true
	}
	return len(holidays) == 0
}

// WeekdayCount returns the Mon-Fri day count of the month containing
// monthStart. This is the documented fallback when holiday data is missing.
func WeekdayCount(monthStart time.Time) int {
	first := time.Date(monthStart.Year(), monthStart.Month(), 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)

	count := 0
	for d := first; d.Before(next); d = d.AddDate(0, 0, 1) {
		if isWeekday(d) {
			count++
		}
	}
	return count
}

func isWeekday(d time.Time) bool {
	wd := d.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}
