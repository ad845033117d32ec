package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/balapan-hq/payroll-backend-go/internal/domain/attendance"
	"github.com/balapan-hq/payroll-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) GetByEmployeeRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, actual_start, actual_end, late_minutes,
			   total_hours, regular_hours, overtime_hours, created_at, updated_at
		FROM attendance_records
		WHERE employee_id = $1 AND date >= $2 AND date < $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.AttendanceRecord
	for rows.Next() {
		var rec attendance.AttendanceRecord
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.ActualStart, &rec.ActualEnd, &rec.LateMinutes,
			&rec.TotalHours, &rec.RegularHours, &rec.OvertimeHours, &rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

func (r *attendanceRepository) UpdateDerived(ctx context.Context, recs []attendance.AttendanceRecord) error {
	if len(recs) == 0 {
		return nil
	}

	// A recalculation pass lands as a whole or not at all.
	return WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)

		query := `
			UPDATE attendance_records
			SET late_minutes = $2, total_hours = $3, regular_hours = $4,
				overtime_hours = $5, updated_at = NOW()
			WHERE id = $1
		`

		for _, rec := range recs {
			tag, err := q.Exec(ctx, query,
				rec.ID, rec.LateMinutes, rec.TotalHours, rec.RegularHours, rec.OvertimeHours,
			)
			if err != nil {
				return fmt.Errorf("failed to update attendance record %s: %w", rec.ID, err)
			}
			if tag.RowsAffected() == 0 {
				return attendance.ErrAttendanceNotFound
			}
		}
		return nil
	})
}
