package payroll

import "context"

// ReconcileOutcome describes what a reconciliation pass did for one record.
type ReconcileOutcome string

const (
	OutcomeCreated ReconcileOutcome = "created"
	OutcomeUpdated ReconcileOutcome = "updated"
	// OutcomeLocked means the record exists in a locked status and was left
	// untouched.
	OutcomeLocked ReconcileOutcome = "locked"
)

// ReconcileResult is the outcome of EnsureForPeriod for one employee.
type ReconcileResult struct {
	Outcome ReconcileOutcome
	Record  PayrollRecord
}

// EmployeeFailure is the per-employee diagnostic detail of a bulk pass.
type EmployeeFailure struct {
	EmployeeID string `json:"employee_id"`
	Reason     string `json:"reason"`
}

// BulkResult summarizes a bulk reconciliation pass.
type BulkResult struct {
	Created  int               `json:"created"`
	Skipped  int               `json:"skipped"`
	Failed   int               `json:"failed"`
	Failures []EmployeeFailure `json:"failures,omitempty"`
}

type PayrollService interface {
	// EnsureForPeriod creates the payroll record for (employee, period) if it
	// does not exist, recomputes it in place if it exists and is open, and
	// leaves it untouched if it is locked. Safe to call repeatedly as new
	// attendance arrives.
	EnsureForPeriod(ctx context.Context, employeeID string, period Period) (ReconcileResult, error)

	// EnsureAllForPeriod creates records for every active non-admin employee
	// lacking one for the period. Existing records are not touched; this is
	// the fill-gaps operation, not a refresh. Per-employee failures are
	// absorbed into the result, system-level failures abort the batch.
	EnsureAllForPeriod(ctx context.Context, period Period) (BulkResult, error)

	// Operator transitions. The reconciler never performs these itself.
	Approve(ctx context.Context, id string) (PayrollRecord, error)
	MarkPaid(ctx context.Context, id string) (PayrollRecord, error)
	MarkProcessed(ctx context.Context, id string) (PayrollRecord, error)

	// Operator mutations, allowed on open records only. Manual fines,
	// advances and bonuses survive every subsequent recomputation.
	AddManualFine(ctx context.Context, id string, req AddFineRequest) (PayrollRecord, error)
	SetAdjustments(ctx context.Context, id string, req SetAdjustmentsRequest) (PayrollRecord, error)

	Get(ctx context.Context, id string) (PayrollRecord, error)
	ListByPeriod(ctx context.Context, period Period) ([]PayrollRecord, error)
}
