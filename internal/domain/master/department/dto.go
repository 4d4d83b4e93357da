package department

import "github.com/aleclahey/payroll-backend-go/internal/pkg/validator"

type DepartmentRequest struct {
	ID          int64  `json:"-"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (r *DepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if len(r.Name) > 50 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 50 characters",
		})
	}

	if len(r.Description) > 150 {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description must not exceed 150 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DepartmentResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	EmployeeCount int    `json:"employeeCount"`
}
