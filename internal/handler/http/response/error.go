package response

import (
	"errors"
	"net/http"

	"github.com/balapan-hq/payroll-backend-go/internal/domain/attendance"
	"github.com/balapan-hq/payroll-backend-go/internal/domain/employee"
	"github.com/balapan-hq/payroll-backend-go/internal/domain/payroll"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	switch {
	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrPayrollRecordAlreadyExists):
		Conflict(w, "Payroll record already exists for this period")
	case errors.Is(err, payroll.ErrPayrollRecordLocked):
		Conflict(w, "Payroll record is locked")
	case errors.Is(err, payroll.ErrInvalidStatusTransition):
		Conflict(w, "Invalid payroll status transition")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid period, expected YYYY-MM", nil)
	case errors.Is(err, payroll.ErrInvalidFineAmount):
		BadRequest(w, "Fine amount must be positive", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
