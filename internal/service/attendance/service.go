package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/balapan-hq/payroll-backend-go/internal/config"
	"github.com/balapan-hq/payroll-backend-go/internal/domain/attendance"
	"github.com/balapan-hq/payroll-backend-go/internal/domain/schedule"
)

// AttendanceServiceImpl recomputes the derived attendance fields (lateness
// and the hour breakdown) against the shift schedule and writes them back.
// The payroll reconciler uses the same domain functions, so the two can
// never disagree on what "late" means.
type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	scheduleRepo   schedule.ScheduleRepository
	cfg            config.PayrollConfig
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	scheduleRepo schedule.ScheduleRepository,
	cfg config.PayrollConfig,
) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		scheduleRepo:   scheduleRepo,
		cfg:            cfg,
	}
}

// RecalculateRange recomputes late_minutes, total_hours, regular_hours and
// overtime_hours for one employee's records with from <= date < to, and
// persists those that changed. Returns the number of updated records.
func (s *AttendanceServiceImpl) RecalculateRange(ctx context.Context, employeeID string, from, to time.Time) (int, error) {
	records, err := s.attendanceRepo.GetByEmployeeRange(ctx, employeeID, from, to)
	if err != nil {
		return 0, fmt.Errorf("failed to load attendance for %s: %w", employeeID, err)
	}

	shifts, err := s.scheduleRepo.GetByEmployeeRange(ctx, employeeID, from, to)
	if err != nil {
		return 0, fmt.Errorf("failed to load shift schedule for %s: %w", employeeID, err)
	}

	shiftByDate := make(map[string]schedule.ScheduledShift, len(shifts))
	for _, sh := range shifts {
		shiftByDate[sh.DateKey()] = sh
	}

	var changed []attendance.AttendanceRecord
	for _, rec := range records {
		if !rec.IsWorkedShift() {
			continue
		}

		var startTime, endTime string
		if shift, ok := shiftByDate[rec.DateKey()]; ok {
			startTime, endTime = shift.StartTime, shift.EndTime
		}

		late := attendance.LateMinutes(*rec.ActualStart, startTime, s.cfg.LocalOffsetMinutes)
		total, regular, overtime := attendance.WorkedHours(rec, startTime, endTime)

		if late == rec.LateMinutes && total == rec.TotalHours &&
			regular == rec.RegularHours && overtime == rec.OvertimeHours {
			continue
		}

		rec.LateMinutes = late
		rec.TotalHours = total
		rec.RegularHours = regular
		rec.OvertimeHours = overtime
		changed = append(changed, rec)
	}

	if err := s.attendanceRepo.UpdateDerived(ctx, changed); err != nil {
		return 0, fmt.Errorf("failed to update attendance for %s: %w", employeeID, err)
	}

	slog.Debug("attendance recalculation finished",
		"employee_id", employeeID, "updated", len(changed), "scanned", len(records))
	return len(changed), nil
}
