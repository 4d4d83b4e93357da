package compensation

import "context"

type CompensationService interface {
	// Upsert creates or updates the single compensation record of an employee
	// together with its standard deduction. Only validation failures are
	// returned as errors; write failures are reported in the result.
	Upsert(ctx context.Context, req UpsertRequest) (UpsertResult, error)

	// UpsertForEmployee loads the employee and upserts with its name and hire date
	UpsertForEmployee(ctx context.Context, employeeID int64, kind Kind, amount float64) (UpsertResult, error)

	// CurrentPayrollMonth finds or creates the month of today, falling back to
	// the first known month and finally to nil
	CurrentPayrollMonth(ctx context.Context) (*int64, error)

	ListDeductions(ctx context.Context) ([]DeductionResponse, error)
	ListPayrollMonths(ctx context.Context) ([]PayrollMonthResponse, error)
}
