package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/balapan-hq/payroll-backend-go/internal/domain/attendance"
	"github.com/balapan-hq/payroll-backend-go/internal/domain/payroll"
	"github.com/balapan-hq/payroll-backend-go/internal/domain/schedule"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// periodFigures is everything one pass derives from the attendance and
// schedule stores before money enters the picture.
type periodFigures struct {
	workedDates []time.Time
	lates       []payroll.LateArrival
	absenceDays int
	workingDays int
}

// EnsureForPeriod implements payroll.PayrollService.
func (s *PayrollServiceImpl) EnsureForPeriod(ctx context.Context, employeeID string, period payroll.Period) (payroll.ReconcileResult, error) {
	return s.ensure(ctx, employeeID, period, payroll.StatusDraft)
}

// ensure runs one reconciliation pass. createStatus distinguishes operator
// drafts from bulk-generated records; it only matters when the record does
// not exist yet.
func (s *PayrollServiceImpl) ensure(ctx context.Context, employeeID string, period payroll.Period, createStatus payroll.Status) (payroll.ReconcileResult, error) {
	existing, err := s.payrollRepo.GetByEmployeePeriod(ctx, employeeID, period)
	switch {
	case err == nil:
		return s.refresh(ctx, existing)

	case errors.Is(err, payroll.ErrPayrollRecordNotFound):
		res, err := s.create(ctx, employeeID, period, createStatus)
		if errors.Is(err, payroll.ErrPayrollRecordAlreadyExists) {
			// Lost a create race; the record that won is authoritative, go
			// through the update path instead.
			existing, err := s.payrollRepo.GetByEmployeePeriod(ctx, employeeID, period)
			if err != nil {
				return payroll.ReconcileResult{}, fmt.Errorf("failed to reload payroll record after create conflict: %w", err)
			}
			return s.refresh(ctx, existing)
		}
		return res, err

	default:
		return payroll.ReconcileResult{}, fmt.Errorf("failed to look up payroll record: %w", err)
	}
}

// create is the first reconciliation pass for an (employee, period) key.
func (s *PayrollServiceImpl) create(ctx context.Context, employeeID string, period payroll.Period, status payroll.Status) (payroll.ReconcileResult, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.ReconcileResult{}, fmt.Errorf("failed to get employee %s: %w", employeeID, err)
	}

	figures, err := s.computePeriod(ctx, employeeID, period)
	if err != nil {
		return payroll.ReconcileResult{}, err
	}

	baseSalary := s.cfg.DefaultBaseSalary
	if emp.BaseSalary != nil && !emp.BaseSalary.IsZero() {
		baseSalary = *emp.BaseSalary
	}
	shiftRate := decimal.Zero
	if emp.ShiftRate != nil {
		shiftRate = *emp.ShiftRate
	}
	latePenaltyRate := s.cfg.LatePenaltyPerMinute
	if emp.LatePenaltyRate != nil {
		latePenaltyRate = *emp.LatePenaltyRate
	}

	model := payroll.NormalizeSalaryModel(emp.SalaryModel)
	accrual := payroll.ComputeAccrual(model, baseSalary, shiftRate, figures.workedDates, figures.workingDays)
	penalties := payroll.AggregatePenalties(figures.lates, latePenaltyRate, figures.absenceDays, s.cfg.AbsencePenaltyPerDay, nil)

	rec := payroll.PayrollRecord{
		ID:                 uuid.NewString(),
		EmployeeID:         employeeID,
		Period:             period,
		BaseSalary:         baseSalary,
		SalaryModel:        model,
		ShiftRate:          shiftRate,
		Accruals:           accrual.Amount,
		DailyRate:          accrual.DailyRate,
		WorkedShifts:       len(figures.workedDates),
		WorkingDays:        figures.workingDays,
		LatePenalties:      penalties.LatePenalties,
		AbsencePenalties:   penalties.AbsencePenalties,
		UserFines:          penalties.UserFines,
		Advance:            decimal.Zero,
		Bonuses:            decimal.Zero,
		LatePenaltyRate:    latePenaltyRate,
		AbsencePenaltyRate: s.cfg.AbsencePenaltyPerDay,
		Fines:              penalties.Fines,
		ShiftDetails:       accrual.Details,
		Status:             status,
	}
	rec.RecomputeTotals()

	created, err := s.payrollRepo.Create(ctx, rec)
	if err != nil {
		return payroll.ReconcileResult{}, err
	}

	return payroll.ReconcileResult{Outcome: payroll.OutcomeCreated, Record: created}, nil
}

// refresh recomputes an existing record in place. Locked records are left
// exactly as they are: approved or paid payroll must never silently change
// under an employee. Manual fines, advance, bonuses and the snapshotted
// penalty rates survive; everything derived is rebuilt.
func (s *PayrollServiceImpl) refresh(ctx context.Context, rec payroll.PayrollRecord) (payroll.ReconcileResult, error) {
	if rec.Status.Locked() {
		return payroll.ReconcileResult{Outcome: payroll.OutcomeLocked, Record: rec}, nil
	}

	emp, err := s.employeeRepo.GetByID(ctx, rec.EmployeeID)
	if err != nil {
		return payroll.ReconcileResult{}, fmt.Errorf("failed to get employee %s: %w", rec.EmployeeID, err)
	}

	figures, err := s.computePeriod(ctx, rec.EmployeeID, rec.Period)
	if err != nil {
		return payroll.ReconcileResult{}, err
	}

	rec.BaseSalary = s.cfg.DefaultBaseSalary
	if emp.BaseSalary != nil && !emp.BaseSalary.IsZero() {
		rec.BaseSalary = *emp.BaseSalary
	}
	rec.SalaryModel = payroll.NormalizeSalaryModel(emp.SalaryModel)
	rec.ShiftRate = decimal.Zero
	if emp.ShiftRate != nil {
		rec.ShiftRate = *emp.ShiftRate
	}

	accrual := payroll.ComputeAccrual(rec.SalaryModel, rec.BaseSalary, rec.ShiftRate, figures.workedDates, figures.workingDays)
	penalties := payroll.AggregatePenalties(figures.lates, rec.LatePenaltyRate, figures.absenceDays, rec.AbsencePenaltyRate, rec.ManualFines())

	rec.Accruals = accrual.Amount
	rec.DailyRate = accrual.DailyRate
	rec.WorkedShifts = len(figures.workedDates)
	rec.WorkingDays = figures.workingDays
	rec.ShiftDetails = accrual.Details
	rec.LatePenalties = penalties.LatePenalties
	rec.AbsencePenalties = penalties.AbsencePenalties
	rec.UserFines = penalties.UserFines
	rec.Fines = penalties.Fines
	rec.RecomputeTotals()

	if err := s.payrollRepo.Update(ctx, rec); err != nil {
		return payroll.ReconcileResult{}, err
	}

	return payroll.ReconcileResult{Outcome: payroll.OutcomeUpdated, Record: rec}, nil
}

// computePeriod qualifies attendance, computes per-record lateness against
// the shift schedule and derives the absence count. Missing shifts mean
// lateness 0, never an error.
func (s *PayrollServiceImpl) computePeriod(ctx context.Context, employeeID string, period payroll.Period) (periodFigures, error) {
	from, to := period.Start(), period.End()

	records, err := s.attendanceRepo.GetByEmployeeRange(ctx, employeeID, from, to)
	if err != nil {
		return periodFigures{}, fmt.Errorf("failed to load attendance for %s: %w", employeeID, err)
	}

	shifts, err := s.scheduleRepo.GetByEmployeeRange(ctx, employeeID, from, to)
	if err != nil {
		return periodFigures{}, fmt.Errorf("failed to load shift schedule for %s: %w", employeeID, err)
	}

	shiftByDate := make(map[string]schedule.ScheduledShift, len(shifts))
	for _, sh := range shifts {
		shiftByDate[sh.DateKey()] = sh
	}

	var figures periodFigures
	worked := make(map[string]bool, len(records))

	for _, rec := range records {
		if !rec.IsWorkedShift() {
			continue
		}
		key := rec.DateKey()
		worked[key] = true
		figures.workedDates = append(figures.workedDates, rec.Date)

		if shift, ok := shiftByDate[key]; ok {
			if late := attendance.LateMinutes(*rec.ActualStart, shift.StartTime, s.cfg.LocalOffsetMinutes); late > 0 {
				figures.lates = append(figures.lates, payroll.LateArrival{Date: key, Minutes: late})
			}
		}
	}

	// Absences: scheduled days already in the past with no qualifying
	// attendance. Future shifts of an in-progress month are not absences yet.
	today := time.Now().UTC().Truncate(24 * time.Hour)
	for _, sh := range shifts {
		if !sh.Date.Before(today) {
			continue
		}
		if !worked[sh.DateKey()] {
			figures.absenceDays++
		}
	}

	figures.workingDays = s.calendar.WorkingDaysInMonth(ctx, from)
	return figures, nil
}

// EnsureAllForPeriod implements payroll.PayrollService. A failure on one
// employee is logged and counted, the batch moves on; a payroll-store or
// employee-directory failure aborts the whole pass.
func (s *PayrollServiceImpl) EnsureAllForPeriod(ctx context.Context, period payroll.Period) (payroll.BulkResult, error) {
	employees, err := s.employeeRepo.ListActiveNonAdmin(ctx)
	if err != nil {
		return payroll.BulkResult{}, fmt.Errorf("failed to list employees: %w", err)
	}

	var (
		mu     sync.Mutex
		result payroll.BulkResult
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.ReconcileWorkers)

	for _, emp := range employees {
		emp := emp
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			_, err := s.payrollRepo.GetByEmployeePeriod(gctx, emp.ID, period)
			if err == nil {
				// Fill-gaps semantics: existing records are never touched.
				mu.Lock()
				result.Skipped++
				mu.Unlock()
				return nil
			}
			if !errors.Is(err, payroll.ErrPayrollRecordNotFound) {
				// Payroll store failure: nothing computed this pass can be
				// trusted, abort the batch.
				return fmt.Errorf("failed to look up payroll record for %s: %w", emp.ID, err)
			}

			res, err := s.ensure(gctx, emp.ID, period, payroll.StatusGenerated)
			if err != nil {
				slog.Error("payroll reconciliation failed for employee",
					"employee_id", emp.ID, "period", period.String(), "error", err)
				mu.Lock()
				result.Failed++
				result.Failures = append(result.Failures, payroll.EmployeeFailure{
					EmployeeID: emp.ID,
					Reason:     err.Error(),
				})
				mu.Unlock()
				return nil
			}

			mu.Lock()
			if res.Outcome == payroll.OutcomeCreated {
				result.Created++
			} else {
				result.Skipped++
			}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return result, err
	}

	slog.Info("bulk payroll reconciliation finished",
		"period", period.String(),
		"created", result.Created,
		"skipped", result.Skipped,
		"failed", result.Failed)
	return result, nil
}
