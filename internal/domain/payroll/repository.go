package payroll

import "context"

// PayrollRepository defines data access for payroll records. The storage
// layer enforces the one-record-per-(employee, period) invariant with a
// unique index; Create surfaces a violation as ErrPayrollRecordAlreadyExists
// so callers can switch to the update path instead of racing.
type PayrollRepository interface {
	GetByID(ctx context.Context, id string) (PayrollRecord, error)
	GetByEmployeePeriod(ctx context.Context, employeeID string, period Period) (PayrollRecord, error)
	ListByPeriod(ctx context.Context, period Period) ([]PayrollRecord, error)

	// Create inserts a new record. Returns ErrPayrollRecordAlreadyExists when
	// a record for the same (employee, period) already exists.
	Create(ctx context.Context, record PayrollRecord) (PayrollRecord, error)

	// Update rewrites the record's financial fields in a single statement, so
	// a pass either lands completely or not at all.
	Update(ctx context.Context, record PayrollRecord) error

	// UpdateStatus moves a record from one status to another, guarded so a
	// concurrent transition cannot be overwritten. Returns
	// ErrInvalidStatusTransition when the record is no longer in `from`.
	UpdateStatus(ctx context.Context, id string, from, to Status) error
}
