package benefit

import (
	"context"

	"github.com/aleclahey/payroll-backend-go/internal/domain/benefit"
	"github.com/aleclahey/payroll-backend-go/internal/domain/employee"
	"golang.org/x/sync/errgroup"
)

type BenefitServiceImpl struct {
	benefitRepo  benefit.BenefitRepository
	employeeRepo employee.EmployeeRepository
}

func NewBenefitService(benefitRepo benefit.BenefitRepository, employeeRepo employee.EmployeeRepository) benefit.BenefitService {
	return &BenefitServiceImpl{
		benefitRepo:  benefitRepo,
		employeeRepo: employeeRepo,
	}
}

// ListBenefits implements benefit.BenefitService.
func (s *BenefitServiceImpl) ListBenefits(ctx context.Context) ([]benefit.BenefitResponse, error) {
	var (
		benefits  []benefit.Benefit
		employees []employee.Employee
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		benefits, err = s.benefitRepo.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		employees, err = s.employeeRepo.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	responses := make([]benefit.BenefitResponse, 0, len(benefits))
	for _, b := range benefits {
		responses = append(responses, toResponse(b, employee.NameOf(b.EmployeeID, employees)))
	}
	return responses, nil
}

// CreateBenefit implements benefit.BenefitService.
func (s *BenefitServiceImpl) CreateBenefit(ctx context.Context, req benefit.CreateBenefitRequest) (benefit.BenefitResponse, error) {
	if err := req.Validate(); err != nil {
		return benefit.BenefitResponse{}, err
	}

	created, err := s.benefitRepo.Create(ctx, benefit.Benefit{
		EmployeeID:  req.EmployeeID,
		BenefitPlan: req.BenefitPlan,
		Status:      req.Status,
	})
	if err != nil {
		return benefit.BenefitResponse{}, err
	}

	name := "Unknown"
	if e, err := s.employeeRepo.GetByID(ctx, created.EmployeeID); err == nil {
		name = e.FullName()
	}
	return toResponse(created, name), nil
}

// DeleteBenefit implements benefit.BenefitService.
func (s *BenefitServiceImpl) DeleteBenefit(ctx context.Context, id int64) error {
	return s.benefitRepo.Delete(ctx, id)
}

// ListPlans implements benefit.BenefitService.
func (s *BenefitServiceImpl) ListPlans(ctx context.Context) []benefit.Plan {
	return benefit.Plans()
}

func toResponse(b benefit.Benefit, employeeName string) benefit.BenefitResponse {
	var cost float64
	if plan, ok := benefit.PlanByName(b.BenefitPlan); ok {
		cost = plan.MonthlyCost
	}
	return benefit.BenefitResponse{
		ID:           b.ID,
		EmployeeID:   b.EmployeeID,
		EmployeeName: employeeName,
		BenefitPlan:  b.BenefitPlan,
		Status:       b.Status,
		Cost:         cost,
	}
}
