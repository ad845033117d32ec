package payroll

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LateArrival is one qualifying attendance record that was late.
type LateArrival struct {
	Date    string // "YYYY-MM-DD"
	Minutes int
}

// PenaltyBreakdown is the deduction side of a reconciliation pass.
type PenaltyBreakdown struct {
	LatePenalties    decimal.Decimal
	AbsencePenalties decimal.Decimal
	UserFines        decimal.Decimal
	Total            decimal.Decimal
	Fines            []Fine
}

// AggregatePenalties combines lateness, absences and operator-entered fines.
//
// One auto fine of minutes * latePenaltyRate is generated per late arrival,
// so latePenalties equals the sum of the generated fine amounts. Absence
// penalties are absenceDays * absencePenaltyRate. Manual fines are carried
// forward verbatim and summed into UserFines; this function never rewrites
// them. The aggregate Total, not any partial figure, is what subtracts from
// accrual.
func AggregatePenalties(lates []LateArrival, latePenaltyRate decimal.Decimal, absenceDays int, absencePenaltyRate decimal.Decimal, manualFines []Fine) PenaltyBreakdown {
	var b PenaltyBreakdown

	b.LatePenalties = decimal.Zero
	for _, l := range lates {
		if l.Minutes <= 0 {
			continue
		}
		amount := decimal.NewFromInt(int64(l.Minutes)).Mul(latePenaltyRate)
		b.Fines = append(b.Fines, Fine{
			ID:     uuid.NewString(),
			Kind:   FineKindLate,
			Amount: amount,
			Date:   l.Date,
		})
		b.LatePenalties = b.LatePenalties.Add(amount)
	}

	b.AbsencePenalties = decimal.Zero
	if absenceDays > 0 {
		b.AbsencePenalties = decimal.NewFromInt(int64(absenceDays)).Mul(absencePenaltyRate)
	}

	b.UserFines = decimal.Zero
	for _, f := range manualFines {
		b.Fines = append(b.Fines, f)
		b.UserFines = b.UserFines.Add(f.Amount)
	}

	b.Total = b.LatePenalties.Add(b.AbsencePenalties).Add(b.UserFines)
	return b
}
