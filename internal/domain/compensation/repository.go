package compensation

import "context"

// The upstream API offers no lookup by employee, so every repository only
// lists whole collections and writes single rows.

type HourlyRepository interface {
	List(ctx context.Context) ([]Hourly, error)
	Create(ctx context.Context, h Hourly) (Hourly, error)
	Update(ctx context.Context, h Hourly) (Hourly, error)
}

type SalariedRepository interface {
	List(ctx context.Context) ([]Salaried, error)
	Create(ctx context.Context, s Salaried) (Salaried, error)
	Update(ctx context.Context, s Salaried) (Salaried, error)
}

type DeductionRepository interface {
	List(ctx context.Context) ([]Deduction, error)
	Create(ctx context.Context, d Deduction) (Deduction, error)
	Update(ctx context.Context, d Deduction) (Deduction, error)
}

type PayrollMonthRepository interface {
	List(ctx context.Context) ([]PayrollMonth, error)
	Create(ctx context.Context, period string) (PayrollMonth, error)
}
