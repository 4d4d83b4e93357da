package employee

import (
	"context"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// ListEmployees joins department, position and compensation onto every employee
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)

	// CreateEmployee saves the employee, then upserts its compensation when submitted
	CreateEmployee(ctx context.Context, req EmployeeRequest) (SaveResponse, error)

	// UpdateEmployee behaves like CreateEmployee for an existing employee
	UpdateEmployee(ctx context.Context, req EmployeeRequest) (SaveResponse, error)

	DeleteEmployee(ctx context.Context, id int64) error

	ListPersonalDays(ctx context.Context) ([]PersonalDayResponse, error)
	ListBankInformation(ctx context.Context) ([]BankInformationResponse, error)
}
