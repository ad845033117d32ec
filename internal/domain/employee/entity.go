package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is the slice of the employee directory this service reads. The
// directory itself (hiring, profiles, credentials) is owned elsewhere.
type Employee struct {
	ID          string
	FullName    string
	Active      bool
	IsAdmin     bool
	BaseSalary  *decimal.Decimal
	SalaryModel string // "month" or "shift"; empty defaults to monthly
	ShiftRate   *decimal.Decimal

	// LatePenaltyRate overrides the deployment-wide per-minute late penalty
	// for this employee when set.
	LatePenaltyRate *decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}
