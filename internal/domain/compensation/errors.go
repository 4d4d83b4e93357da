package compensation

import "errors"

var (
	ErrCompensationNotFound = errors.New("compensation record not found")
	ErrDeductionNotFound    = errors.New("deduction not found")
	ErrPayrollMonthNotFound = errors.New("payroll month not found")
	ErrInvalidKind          = errors.New("compensation type must be hourly or salaried")
)
