package payroll

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Accrual is the gross-pay side of a reconciliation pass.
type Accrual struct {
	Amount    decimal.Decimal
	DailyRate decimal.Decimal
	Details   []ShiftDetail
}

// ComputeAccrual computes gross pay for a period.
//
// Monthly model: dailyRate = round(baseSalary / workingDaysInMonth) and
// accrual = round(dailyRate * workedShifts); a non-positive working-day count
// yields a zero accrual rather than a division by zero. Per-shift model:
// accrual = workedShifts * shiftRate. workedDates are the calendar days of
// the qualifying records; one statement line is emitted per worked shift.
func ComputeAccrual(model SalaryModel, baseSalary, shiftRate decimal.Decimal, workedDates []time.Time, workingDaysInMonth int) Accrual {
	var dailyRate decimal.Decimal

	switch model {
	case SalaryModelPerShift:
		dailyRate = shiftRate
	default:
		if workingDaysInMonth <= 0 {
			return Accrual{Amount: decimal.Zero, DailyRate: decimal.Zero}
		}
		dailyRate = baseSalary.Div(decimal.NewFromInt(int64(workingDaysInMonth))).Round(0)
	}

	workedShifts := decimal.NewFromInt(int64(len(workedDates)))
	amount := dailyRate.Mul(workedShifts).Round(0)

	sorted := make([]time.Time, len(workedDates))
	copy(sorted, workedDates)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	details := make([]ShiftDetail, 0, len(sorted))
	for _, d := range sorted {
		details = append(details, ShiftDetail{
			Date:     d.Format("2006-01-02"),
			Earnings: dailyRate,
			Fines:    decimal.Zero,
			Net:      dailyRate,
		})
	}

	return Accrual{Amount: amount, DailyRate: dailyRate, Details: details}
}
