package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// GetByEmployeeRange returns records with from <= date < to.
	GetByEmployeeRange(ctx context.Context, employeeID string, from, to time.Time) ([]AttendanceRecord, error)

	// UpdateDerived persists the recomputed late-minutes and hour fields for
	// a batch of records atomically. Clock times are owned by the attendance
	// module and are not written here.
	UpdateDerived(ctx context.Context, recs []AttendanceRecord) error
}
