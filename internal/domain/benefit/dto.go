package benefit

import (
	"github.com/aleclahey/payroll-backend-go/internal/pkg/validator"
)

type CreateBenefitRequest struct {
	EmployeeID  int64  `json:"employeeId" validate:"required,gt=0"`
	BenefitPlan string `json:"benefitPlan" validate:"required"`
	Status      Status `json:"status,omitempty" validate:"omitempty,oneof=active pending inactive"`
}

func (r *CreateBenefitRequest) Validate() error {
	if err := validator.Struct(r); err != nil {
		return err
	}
	if _, ok := PlanByName(r.BenefitPlan); !ok {
		return validator.ValidationErrors{{Field: "benefitPlan", Message: ErrUnknownPlan.Error()}}
	}
	return nil
}

type BenefitResponse struct {
	ID           int64   `json:"id"`
	EmployeeID   int64   `json:"employeeId"`
	EmployeeName string  `json:"employeename"`
	BenefitPlan  string  `json:"benefitplan"`
	Status       Status  `json:"status"`
	Cost         float64 `json:"cost"`
}
