package payroll

import "errors"

var (
	ErrPayrollRecordNotFound      = errors.New("payroll record not found")
	ErrPayrollRecordAlreadyExists = errors.New("payroll record already exists for this period")
	ErrPayrollRecordLocked        = errors.New("payroll record is locked, cannot modify")
	ErrInvalidPeriod              = errors.New("invalid payroll period")
	ErrInvalidStatusTransition    = errors.New("invalid payroll status transition")
	ErrInvalidFineAmount          = errors.New("fine amount must be positive")
)
