package payroll

import (
	"context"
	"fmt"

	"github.com/balapan-hq/payroll-backend-go/internal/config"
	"github.com/balapan-hq/payroll-backend-go/internal/domain/attendance"
	"github.com/balapan-hq/payroll-backend-go/internal/domain/employee"
	"github.com/balapan-hq/payroll-backend-go/internal/domain/payroll"
	"github.com/balapan-hq/payroll-backend-go/internal/domain/schedule"
	"github.com/balapan-hq/payroll-backend-go/internal/pkg/calendar"
	"github.com/google/uuid"
)

type PayrollServiceImpl struct {
	payrollRepo    payroll.PayrollRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	scheduleRepo   schedule.ScheduleRepository
	calendar       *calendar.Service
	cfg            config.PayrollConfig
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	scheduleRepo schedule.ScheduleRepository,
	cal *calendar.Service,
	cfg config.PayrollConfig,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		scheduleRepo:   scheduleRepo,
		calendar:       cal,
		cfg:            cfg,
	}
}

// Get implements payroll.PayrollService.
func (s *PayrollServiceImpl) Get(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	return s.payrollRepo.GetByID(ctx, id)
}

// ListByPeriod implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListByPeriod(ctx context.Context, period payroll.Period) ([]payroll.PayrollRecord, error) {
	return s.payrollRepo.ListByPeriod(ctx, period)
}

// Approve implements payroll.PayrollService.
func (s *PayrollServiceImpl) Approve(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	return s.transition(ctx, id, payroll.StatusApproved)
}

// MarkPaid implements payroll.PayrollService.
func (s *PayrollServiceImpl) MarkPaid(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	return s.transition(ctx, id, payroll.StatusPaid)
}

// MarkProcessed implements payroll.PayrollService.
func (s *PayrollServiceImpl) MarkProcessed(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	return s.transition(ctx, id, payroll.StatusProcessed)
}

// transition applies one operator-driven status move, rejecting anything
// outside the transition table. The repository re-checks the current status
// so two concurrent operators cannot both win.
func (s *PayrollServiceImpl) transition(ctx context.Context, id string, to payroll.Status) (payroll.PayrollRecord, error) {
	rec, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollRecord{}, err
	}

	if !rec.Status.CanTransitionTo(to) {
		return payroll.PayrollRecord{}, fmt.Errorf("%w: %s -> %s", payroll.ErrInvalidStatusTransition, rec.Status, to)
	}

	if err := s.payrollRepo.UpdateStatus(ctx, id, rec.Status, to); err != nil {
		return payroll.PayrollRecord{}, err
	}

	rec.Status = to
	return rec, nil
}

// AddManualFine implements payroll.PayrollService.
func (s *PayrollServiceImpl) AddManualFine(ctx context.Context, id string, req payroll.AddFineRequest) (payroll.PayrollRecord, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRecord{}, err
	}

	rec, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollRecord{}, err
	}
	if rec.Status.Locked() {
		return payroll.PayrollRecord{}, payroll.ErrPayrollRecordLocked
	}

	rec.Fines = append(rec.Fines, payroll.Fine{
		ID:     uuid.NewString(),
		Kind:   payroll.FineKindManual,
		Amount: req.Amount,
		Reason: req.Reason,
	})
	rec.UserFines = rec.UserFines.Add(req.Amount)
	rec.RecomputeTotals()

	if err := s.payrollRepo.Update(ctx, rec); err != nil {
		return payroll.PayrollRecord{}, err
	}
	return rec, nil
}

// SetAdjustments implements payroll.PayrollService.
func (s *PayrollServiceImpl) SetAdjustments(ctx context.Context, id string, req payroll.SetAdjustmentsRequest) (payroll.PayrollRecord, error) {
	rec, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollRecord{}, err
	}
	if rec.Status.Locked() {
		return payroll.PayrollRecord{}, payroll.ErrPayrollRecordLocked
	}

	if req.Advance != nil {
		rec.Advance = *req.Advance
	}
	if req.Bonuses != nil {
		rec.Bonuses = *req.Bonuses
	}
	rec.RecomputeTotals()

	if err := s.payrollRepo.Update(ctx, rec); err != nil {
		return payroll.PayrollRecord{}, err
	}
	return rec, nil
}
