package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/balapan-hq/payroll-backend-go/internal/domain/payroll"
	"github.com/balapan-hq/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollColumns = `
	p.id, p.employee_id, p.period, p.base_salary, p.salary_model, p.shift_rate,
	p.accruals, p.daily_rate, p.worked_shifts, p.working_days,
	p.late_penalties, p.absence_penalties, p.user_fines, p.penalties,
	p.advance, p.bonuses, p.total, p.late_penalty_rate, p.absence_penalty_rate,
	p.fines, p.shift_details, p.status, p.created_at, p.updated_at,
	e.full_name
`

func (r *payrollRepository) scanRecord(row pgx.Row) (payroll.PayrollRecord, error) {
	var (
		rec          payroll.PayrollRecord
		finesJSON    []byte
		detailsJSON  []byte
		employeeName *string
	)

	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Period, &rec.BaseSalary, &rec.SalaryModel, &rec.ShiftRate,
		&rec.Accruals, &rec.DailyRate, &rec.WorkedShifts, &rec.WorkingDays,
		&rec.LatePenalties, &rec.AbsencePenalties, &rec.UserFines, &rec.Penalties,
		&rec.Advance, &rec.Bonuses, &rec.Total, &rec.LatePenaltyRate, &rec.AbsencePenaltyRate,
		&finesJSON, &detailsJSON, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
		&employeeName,
	)
	if err != nil {
		return payroll.PayrollRecord{}, err
	}

	if len(finesJSON) > 0 {
		if err := json.Unmarshal(finesJSON, &rec.Fines); err != nil {
			return payroll.PayrollRecord{}, fmt.Errorf("failed to decode fines: %w", err)
		}
	}
	if len(detailsJSON) > 0 {
		if err := json.Unmarshal(detailsJSON, &rec.ShiftDetails); err != nil {
			return payroll.PayrollRecord{}, fmt.Errorf("failed to decode shift details: %w", err)
		}
	}
	rec.EmployeeName = employeeName

	return rec, nil
}

func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + payrollColumns + `
		FROM payroll_records p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1
	`

	rec, err := r.scanRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return rec, nil
}

func (r *payrollRepository) GetByEmployeePeriod(ctx context.Context, employeeID string, period payroll.Period) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + payrollColumns + `
		FROM payroll_records p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE p.employee_id = $1 AND p.period = $2
	`

	rec, err := r.scanRecord(q.QueryRow(ctx, query, employeeID, period.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return rec, nil
}

func (r *payrollRepository) ListByPeriod(ctx context.Context, period payroll.Period) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + payrollColumns + `
		FROM payroll_records p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE p.period = $1
		ORDER BY e.full_name
	`

	rows, err := q.Query(ctx, query, period.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		rec, err := r.scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

func (r *payrollRepository) Create(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	finesJSON, err := json.Marshal(record.Fines)
	if err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("failed to encode fines: %w", err)
	}
	detailsJSON, err := json.Marshal(record.ShiftDetails)
	if err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("failed to encode shift details: %w", err)
	}

	query := `
		INSERT INTO payroll_records (
			id, employee_id, period, base_salary, salary_model, shift_rate,
			accruals, daily_rate, worked_shifts, working_days,
			late_penalties, absence_penalties, user_fines, penalties,
			advance, bonuses, total, late_penalty_rate, absence_penalty_rate,
			fines, shift_details, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22
		)
		RETURNING created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		record.ID, record.EmployeeID, record.Period.String(), record.BaseSalary, record.SalaryModel, record.ShiftRate,
		record.Accruals, record.DailyRate, record.WorkedShifts, record.WorkingDays,
		record.LatePenalties, record.AbsencePenalties, record.UserFines, record.Penalties,
		record.Advance, record.Bonuses, record.Total, record.LatePenaltyRate, record.AbsencePenaltyRate,
		finesJSON, detailsJSON, record.Status,
	).Scan(&record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		// The unique index on (employee_id, period) is the concurrency guard:
		// the loser of a create race switches to the update path.
		if strings.Contains(err.Error(), "uk_payroll_employee_period") {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordAlreadyExists
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return record, nil
}

func (r *payrollRepository) Update(ctx context.Context, record payroll.PayrollRecord) error {
	q := GetQuerier(ctx, r.db)

	finesJSON, err := json.Marshal(record.Fines)
	if err != nil {
		return fmt.Errorf("failed to encode fines: %w", err)
	}
	detailsJSON, err := json.Marshal(record.ShiftDetails)
	if err != nil {
		return fmt.Errorf("failed to encode shift details: %w", err)
	}

	// Single statement so the financial fields land together or not at all.
	// The status guard keeps a pass from racing an operator lock.
	query := `
		UPDATE payroll_records
		SET base_salary = $2, salary_model = $3, shift_rate = $4,
			accruals = $5, daily_rate = $6, worked_shifts = $7, working_days = $8,
			late_penalties = $9, absence_penalties = $10, user_fines = $11, penalties = $12,
			advance = $13, bonuses = $14, total = $15,
			fines = $16, shift_details = $17, updated_at = NOW()
		WHERE id = $1 AND status IN ('draft', 'generated')
	`

	tag, err := q.Exec(ctx, query,
		record.ID, record.BaseSalary, record.SalaryModel, record.ShiftRate,
		record.Accruals, record.DailyRate, record.WorkedShifts, record.WorkingDays,
		record.LatePenalties, record.AbsencePenalties, record.UserFines, record.Penalties,
		record.Advance, record.Bonuses, record.Total,
		finesJSON, detailsJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to update payroll record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollRecordLocked
	}

	return nil
}

func (r *payrollRepository) UpdateStatus(ctx context.Context, id string, from, to payroll.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_records
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2
	`

	tag, err := q.Exec(ctx, query, id, from, to)
	if err != nil {
		return fmt.Errorf("failed to update payroll status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrInvalidStatusTransition
	}

	return nil
}
