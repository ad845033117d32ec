package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type stubHolidaySource struct {
	holidays []time.Time
	err      error
}

func (s stubHolidaySource) HolidaysInRange(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []time.Time
	for _, h := range s.holidays {
		if !h.Before(from) && h.Before(to) {
			out = append(out, h)
		}
	}
	return out, nil
}

func TestWeekdayCount(t *testing.T) {
	// June 2025 has 21 weekdays, February 2025 has 20.
	assert.Equal(t, 21, WeekdayCount(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 20, WeekdayCount(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)))
}

func TestWorkingDaysInMonth(t *testing.T) {
	ctx := context.Background()
	june := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("subtracts weekday holidays", func(t *testing.T) {
		svc := New(stubHolidaySource{holidays: []time.Time{
			time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),  // Monday
			time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC), // Saturday, ignored
		}})
		assert.Equal(t, 20, svc.WorkingDaysInMonth(ctx, june))
	})

	t.Run("no holidays means plain weekday count", func(t *testing.T) {
		svc := New(stubHolidaySource{})
		assert.Equal(t, 21, svc.WorkingDaysInMonth(ctx, june))
	})

	t.Run("source failure falls back to weekday count", func(t *testing.T) {
		svc := New(stubHolidaySource{err: errors.New("connection refused")})
		assert.Equal(t, 21, svc.WorkingDaysInMonth(ctx, june))
	})

	t.Run("non positive adjusted count falls back to weekday count", func(t *testing.T) {
		var everyDay []time.Time
		for d := 1; d <= 30; d++ {
			everyDay = append(everyDay, time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC))
		}
		svc := New(stubHolidaySource{holidays: everyDay})
		assert.Equal(t, 21, svc.WorkingDaysInMonth(ctx, june))
	})
}

func TestIsWorkingDay(t *testing.T) {
	ctx := context.Background()
	holiday := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	svc := New(stubHolidaySource{holidays: []time.Time{holiday}})

	assert.False(t, svc.IsWorkingDay(ctx, holiday))
	assert.False(t, svc.IsWorkingDay(ctx, time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC))) // Saturday
	assert.True(t, svc.IsWorkingDay(ctx, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)))

	broken := New(stubHolidaySource{err: errors.New("down")})
	assert.True(t, broken.IsWorkingDay(ctx, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)))
}
