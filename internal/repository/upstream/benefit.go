package upstream

import (
	"context"
	"fmt"

	"github.com/aleclahey/payroll-backend-go/internal/domain/benefit"
	"github.com/aleclahey/payroll-backend-go/internal/pkg/restapi"
)

type benefitRepositoryImpl struct {
	client *restapi.Client
}

func NewBenefitRepository(client *restapi.Client) benefit.BenefitRepository {
	return &benefitRepositoryImpl{client: client}
}

func decodeBenefit(raw restapi.Record) benefit.Benefit {
	r := canonical(resBenefits, raw)
	status := benefit.Status(r.String("status"))
	if status == "" {
		status = benefit.StatusActive
	}
	return benefit.Benefit{
		ID:          r.Int("id"),
		EmployeeID:  r.Int("employeeId"),
		BenefitPlan: r.String("benefitPlan"),
		Status:      status,
	}
}

// List implements benefit.BenefitRepository.
func (r *benefitRepositoryImpl) List(ctx context.Context) ([]benefit.Benefit, error) {
	records, err := r.client.List(ctx, resBenefits)
	if err != nil {
		return nil, fmt.Errorf("failed to list benefits: %w", err)
	}

	benefits := make([]benefit.Benefit, 0, len(records))
	for _, rec := range records {
		benefits = append(benefits, decodeBenefit(rec))
	}
	return benefits, nil
}

// Create implements benefit.BenefitRepository.
func (r *benefitRepositoryImpl) Create(ctx context.Context, b benefit.Benefit) (benefit.Benefit, error) {
	body := map[string]any{
		"employee":    b.EmployeeID,
		"benefitplan": b.BenefitPlan,
	}
	if b.Status != "" {
		body["status"] = string(b.Status)
	}

	rec, err := r.client.Create(ctx, resBenefits, body)
	if err != nil {
		return benefit.Benefit{}, fmt.Errorf("failed to create benefit: %w", err)
	}
	return decodeBenefit(rec), nil
}

// Delete implements benefit.BenefitRepository.
func (r *benefitRepositoryImpl) Delete(ctx context.Context, id int64) error {
	if err := r.client.Delete(ctx, resBenefits, id); err != nil {
		if restapi.IsNotFound(err) {
			return benefit.ErrBenefitNotFound
		}
		return fmt.Errorf("failed to delete benefit: %w", err)
	}
	return nil
}
