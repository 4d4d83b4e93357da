package payroll

import "context"

type PaymentRepository interface {
	List(ctx context.Context) ([]Payment, error)
	GetByID(ctx context.Context, id int64) (Payment, error)
	Create(ctx context.Context, req CreatePaymentRequest) (Payment, error)
}
