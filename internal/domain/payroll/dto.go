package payroll

import (
	"github.com/shopspring/decimal"
)

type AddFineRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason"`
}

func (r AddFineRequest) Validate() error {
	if !r.Amount.IsPositive() {
		return ErrInvalidFineAmount
	}
	return nil
}

type SetAdjustmentsRequest struct {
	Advance *decimal.Decimal `json:"advance,omitempty"`
	Bonuses *decimal.Decimal `json:"bonuses,omitempty"`
}

type PayrollRecordResponse struct {
	ID               string          `json:"id"`
	EmployeeID       string          `json:"employee_id"`
	EmployeeName     string          `json:"employee_name,omitempty"`
	Period           string          `json:"period"`
	BaseSalary       decimal.Decimal `json:"base_salary"`
	SalaryModel      string          `json:"salary_model"`
	ShiftRate        decimal.Decimal `json:"shift_rate"`
	Accruals         decimal.Decimal `json:"accruals"`
	DailyRate        decimal.Decimal `json:"daily_rate"`
	WorkedShifts     int             `json:"worked_shifts"`
	WorkingDays      int             `json:"working_days"`
	LatePenalties    decimal.Decimal `json:"late_penalties"`
	AbsencePenalties decimal.Decimal `json:"absence_penalties"`
	UserFines        decimal.Decimal `json:"user_fines"`
	Penalties        decimal.Decimal `json:"penalties"`
	Advance          decimal.Decimal `json:"advance"`
	Bonuses          decimal.Decimal `json:"bonuses"`
	Total            decimal.Decimal `json:"total"`
	Fines            []Fine          `json:"fines"`
	ShiftDetails     []ShiftDetail   `json:"shift_details"`
	Status           string          `json:"status"`
	CreatedAt        string          `json:"created_at,omitempty"`
	UpdatedAt        string          `json:"updated_at,omitempty"`
}

// ToResponse maps a record to its API shape.
func ToResponse(r PayrollRecord) PayrollRecordResponse {
	employeeName := ""
	if r.EmployeeName != nil {
		employeeName = *r.EmployeeName
	}

	resp := PayrollRecordResponse{
		ID:               r.ID,
		EmployeeID:       r.EmployeeID,
		EmployeeName:     employeeName,
		Period:           r.Period.String(),
		BaseSalary:       r.BaseSalary,
		SalaryModel:      string(r.SalaryModel),
		ShiftRate:        r.ShiftRate,
		Accruals:         r.Accruals,
		DailyRate:        r.DailyRate,
		WorkedShifts:     r.WorkedShifts,
		WorkingDays:      r.WorkingDays,
		LatePenalties:    r.LatePenalties,
		AbsencePenalties: r.AbsencePenalties,
		UserFines:        r.UserFines,
		Penalties:        r.Penalties,
		Advance:          r.Advance,
		Bonuses:          r.Bonuses,
		Total:            r.Total,
		Fines:            r.Fines,
		ShiftDetails:     r.ShiftDetails,
		Status:           string(r.Status),
	}
	if !r.CreatedAt.IsZero() {
		resp.CreatedAt = r.CreatedAt.Format("2006-01-02 15:04:05")
	}
	if !r.UpdatedAt.IsZero() {
		resp.UpdatedAt = r.UpdatedAt.Format("2006-01-02 15:04:05")
	}
	return resp
}
