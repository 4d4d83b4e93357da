package benefit

import "context"

type BenefitService interface {
	ListBenefits(ctx context.Context) ([]BenefitResponse, error)
	CreateBenefit(ctx context.Context, req CreateBenefitRequest) (BenefitResponse, error)
	DeleteBenefit(ctx context.Context, id int64) error
	ListPlans(ctx context.Context) []Plan
}
