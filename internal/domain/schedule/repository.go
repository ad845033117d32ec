package schedule

import (
	"context"
	"time"
)

// ScheduleRepository is read-only from the reconciliation core's perspective;
// shift planning is owned by the scheduling module.
type ScheduleRepository interface {
	// GetByEmployeeRange returns shifts with from <= date < to.
	GetByEmployeeRange(ctx context.Context, employeeID string, from, to time.Time) ([]ScheduledShift, error)
}
