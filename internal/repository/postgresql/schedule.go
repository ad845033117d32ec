package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/balapan-hq/payroll-backend-go/internal/domain/schedule"
	"github.com/balapan-hq/payroll-backend-go/internal/pkg/database"
)

type scheduleRepository struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) GetByEmployeeRange(ctx context.Context, employeeID string, from, to time.Time) ([]schedule.ScheduledShift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, start_time, end_time, created_at, updated_at
		FROM scheduled_shifts
		WHERE employee_id = $1 AND date >= $2 AND date < $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query scheduled shifts: %w", err)
	}
	defer rows.Close()

	var shifts []schedule.ScheduledShift
	for rows.Next() {
		var s schedule.ScheduledShift
		if err := rows.Scan(
			&s.ID, &s.EmployeeID, &s.Date, &s.StartTime, &s.EndTime, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan scheduled shift: %w", err)
		}
		shifts = append(shifts, s)
	}

	return shifts, rows.Err()
}
