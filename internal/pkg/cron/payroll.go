package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/balapan-hq/payroll-backend-go/internal/domain/payroll"
)

type PayrollJobs struct {
	payrollSvc  payroll.PayrollService
	payrollRepo payroll.PayrollRepository
}

func NewPayrollJobs(payrollSvc payroll.PayrollService, payrollRepo payroll.PayrollRepository) *PayrollJobs {
	return &PayrollJobs{
		payrollSvc:  payrollSvc,
		payrollRepo: payrollRepo,
	}
}

func (j *PayrollJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob(Job{
		Name:     "reconcile_current_period",
		Interval: 1 * time.Hour,
		Fn:       j.ReconcileCurrentPeriod,
	})
}

// ReconcileCurrentPeriod fills payroll gaps for the running month and
// refreshes every record still open, so statements track attendance as it
// arrives. Locked records are skipped by the reconciler itself.
func (j *PayrollJobs) ReconcileCurrentPeriod(ctx context.Context) error {
	// Only run at night (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	period := payroll.PeriodOf(time.Now())
	slog.Info("Cron: Starting payroll reconciliation", "period", period.String())

	result, err := j.payrollSvc.EnsureAllForPeriod(ctx, period)
	if err != nil {
		return fmt.Errorf("bulk payroll generation failed: %w", err)
	}

	records, err := j.payrollRepo.ListByPeriod(ctx, period)
	if err != nil {
		return fmt.Errorf("failed to list payroll records: %w", err)
	}

	refreshed := 0
	for _, rec := range records {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if !rec.Status.Open() {
			continue
		}

		if _, err := j.payrollSvc.EnsureForPeriod(ctx, rec.EmployeeID, period); err != nil {
			slog.Error("Cron: Failed to refresh payroll record",
				"employee_id", rec.EmployeeID, "period", period.String(), "error", err)
			continue
		}
		refreshed++
	}

	slog.Info("Cron: Payroll reconciliation finished",
		"period", period.String(),
		"created", result.Created,
		"failed", result.Failed,
		"refreshed", refreshed)
	return nil
}
