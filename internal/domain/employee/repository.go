package employee

import "context"

type EmployeeRepository interface {
	List(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id int64) (Employee, error)
	Create(ctx context.Context, e Employee) (Employee, error)
	Update(ctx context.Context, e Employee) (Employee, error)
	Delete(ctx context.Context, id int64) error
}

type PersonalDayRepository interface {
	List(ctx context.Context) ([]PersonalDay, error)
}

type BankInformationRepository interface {
	List(ctx context.Context) ([]BankInformation, error)
}
