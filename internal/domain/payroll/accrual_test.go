package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func datesIn(month time.Month, days ...int) []time.Time {
	out := make([]time.Time, 0, len(days))
	for _, d := range days {
		out = append(out, time.Date(2025, month, d, 0, 0, 0, 0, time.UTC))
	}
	return out
}

func TestComputeAccrualMonthly(t *testing.T) {
	base := decimal.NewFromInt(180000)

	t.Run("rounds daily rate before multiplying", func(t *testing.T) {
		worked := make([]time.Time, 0, 20)
		for d := 1; d <= 20; d++ {
			worked = append(worked, time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC))
		}
		acc := ComputeAccrual(SalaryModelMonthly, base, decimal.Zero, worked, 22)
		assert.Equal(t, "8182", acc.DailyRate.String())
		assert.Equal(t, "163640", acc.Amount.String())
		assert.Len(t, acc.Details, 20)
	})

	t.Run("zero working days yields zero accrual", func(t *testing.T) {
		acc := ComputeAccrual(SalaryModelMonthly, base, decimal.Zero, datesIn(time.June, 2, 3), 0)
		assert.True(t, acc.Amount.IsZero())
		assert.True(t, acc.DailyRate.IsZero())
	})

	t.Run("no worked shifts yields zero amount", func(t *testing.T) {
		acc := ComputeAccrual(SalaryModelMonthly, base, decimal.Zero, nil, 21)
		assert.True(t, acc.Amount.IsZero())
		assert.False(t, acc.DailyRate.IsZero())
		assert.Empty(t, acc.Details)
	})
}

func TestComputeAccrualPerShift(t *testing.T) {
	rate := decimal.NewFromInt(9500)

	acc := ComputeAccrual(SalaryModelPerShift, decimal.Zero, rate, datesIn(time.June, 2, 3, 4), 21)
	assert.Equal(t, "28500", acc.Amount.String())
	assert.Equal(t, "9500", acc.DailyRate.String())
}

func TestComputeAccrualDetails(t *testing.T) {
	rate := decimal.NewFromInt(8000)
	acc := ComputeAccrual(SalaryModelPerShift, decimal.Zero, rate, datesIn(time.June, 5, 2, 9), 21)

	// Sorted by date, fines always zero, net equals earnings.
	assert.Equal(t, "2025-06-02", acc.Details[0].Date)
	assert.Equal(t, "2025-06-05", acc.Details[1].Date)
	assert.Equal(t, "2025-06-09", acc.Details[2].Date)
	for _, d := range acc.Details {
		assert.Equal(t, "8000", d.Earnings.String())
		assert.True(t, d.Fines.IsZero())
		assert.Equal(t, d.Earnings.String(), d.Net.String())
	}
}

func TestNormalizeSalaryModel(t *testing.T) {
	assert.Equal(t, SalaryModelPerShift, NormalizeSalaryModel("shift"))
	assert.Equal(t, SalaryModelMonthly, NormalizeSalaryModel("month"))
	assert.Equal(t, SalaryModelMonthly, NormalizeSalaryModel(""))
	assert.Equal(t, SalaryModelMonthly, NormalizeSalaryModel("hourly"))
}
