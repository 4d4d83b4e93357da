package position

import "github.com/aleclahey/payroll-backend-go/internal/pkg/validator"

type CreatePositionRequest struct {
	Title    string  `json:"title"`
	FromDate string  `json:"fromDate"`
	ToDate   *string `json:"toDate,omitempty"`
}

func (r *CreatePositionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	} else if len(r.Title) > 60 {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not exceed 60 characters",
		})
	}

	from, fromOK := validator.IsValidDate(r.FromDate)
	if !validator.IsEmpty(r.FromDate) && !fromOK {
		errs = append(errs, validator.ValidationError{
			Field:   "fromDate",
			Message: "fromDate must be in YYYY-MM-DD format",
		})
	}

	if r.ToDate != nil {
		to, ok := validator.IsValidDate(*r.ToDate)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "toDate",
				Message: "toDate must be in YYYY-MM-DD format",
			})
		} else if fromOK && to.Before(from) {
			errs = append(errs, validator.ValidationError{
				Field:   "toDate",
				Message: "toDate must not be before fromDate",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PositionResponse struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	FromDate *string `json:"fromDate"`
	ToDate   *string `json:"toDate"`
}
