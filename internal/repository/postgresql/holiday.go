package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/balapan-hq/payroll-backend-go/internal/pkg/calendar"
	"github.com/balapan-hq/payroll-backend-go/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) calendar.HolidaySource {
	return &holidayRepository{db: db}
}

func (r *holidayRepository) HolidaysInRange(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT date FROM holidays
		WHERE date >= $1 AND date < $2
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query holidays: %w", err)
	}
	defer rows.Close()

	var holidays []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, d)
	}

	return holidays, rows.Err()
}
