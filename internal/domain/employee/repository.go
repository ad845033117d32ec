package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)

	// ListActiveNonAdmin returns the employees eligible for payroll
	// generation: active, and not administrative accounts.
	ListActiveNonAdmin(ctx context.Context) ([]Employee, error)
}
