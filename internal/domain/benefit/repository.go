package benefit

import "context"

type BenefitRepository interface {
	List(ctx context.Context) ([]Benefit, error)
	Create(ctx context.Context, b Benefit) (Benefit, error)
	Delete(ctx context.Context, id int64) error
}
