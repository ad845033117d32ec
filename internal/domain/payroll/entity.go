package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryModel enum
type SalaryModel string

const (
	SalaryModelMonthly  SalaryModel = "month"
	SalaryModelPerShift SalaryModel = "shift"
)

// NormalizeSalaryModel maps unknown or empty tags to the monthly model. This
// is deliberate policy, not an error path.
func NormalizeSalaryModel(s string) SalaryModel {
	if SalaryModel(s) == SalaryModelPerShift {
		return SalaryModelPerShift
	}
	return SalaryModelMonthly
}

// FineKind enum
type FineKind string

const (
	// FineKindLate fines are generated from lateness on every reconciliation
	// pass and replaced wholesale by the next pass.
	FineKindLate FineKind = "late"
	// FineKindManual fines are operator-entered and carried forward verbatim;
	// recomputation never rewrites or deletes them.
	FineKindManual FineKind = "manual"
)

// Fine is one deduction line on a payroll record.
type Fine struct {
	ID     string          `json:"id"`
	Kind   FineKind        `json:"kind"`
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date,omitempty"` // "YYYY-MM-DD" for late fines
	Reason string          `json:"reason,omitempty"`
}

// ShiftDetail is one per-worked-shift statement line. Fines is always zero
// here: fines are tracked at the aggregate level so they are not counted
// against the total twice.
type ShiftDetail struct {
	Date     string          `json:"date"` // "YYYY-MM-DD"
	Earnings decimal.Decimal `json:"earnings"`
	Fines    decimal.Decimal `json:"fines"`
	Net      decimal.Decimal `json:"net"`
}

// PayrollRecord is the per-(employee, period) financial statement. At most
// one exists per key, enforced by a unique index in storage. The penalty
// rates are snapshotted at first draft so recomputation passes run months
// later keep the rates that were in force.
type PayrollRecord struct {
	ID         string
	EmployeeID string
	Period     Period

	BaseSalary  decimal.Decimal
	SalaryModel SalaryModel
	ShiftRate   decimal.Decimal

	Accruals     decimal.Decimal
	DailyRate    decimal.Decimal
	WorkedShifts int
	WorkingDays  int

	LatePenalties    decimal.Decimal
	AbsencePenalties decimal.Decimal
	UserFines        decimal.Decimal
	Penalties        decimal.Decimal

	Advance decimal.Decimal
	Bonuses decimal.Decimal
	Total   decimal.Decimal

	LatePenaltyRate    decimal.Decimal // per minute
	AbsencePenaltyRate decimal.Decimal // per day

	Fines        []Fine
	ShiftDetails []ShiftDetail

	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName *string
}

// ManualFines returns the operator-entered fine entries.
func (r *PayrollRecord) ManualFines() []Fine {
	var manual []Fine
	for _, f := range r.Fines {
		if f.Kind == FineKindManual {
			manual = append(manual, f)
		}
	}
	return manual
}

// RecomputeTotals rebuilds the derived sums from the component figures:
// penalties = late + absence + user fines, and
// total = max(0, accruals - penalties - advance) + bonuses.
// Total never goes negative.
func (r *PayrollRecord) RecomputeTotals() {
	r.Penalties = r.LatePenalties.Add(r.AbsencePenalties).Add(r.UserFines)

	net := r.Accruals.Sub(r.Penalties).Sub(r.Advance)
	if net.IsNegative() {
		net = decimal.Zero
	}
	r.Total = net.Add(r.Bonuses)
}
