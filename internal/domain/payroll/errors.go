package payroll

import "errors"

var (
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrPayrollMonthNotFound = errors.New("payroll month not found")
)
