package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aleclahey/payroll-backend-go/internal/domain/benefit"
	"github.com/aleclahey/payroll-backend-go/internal/domain/compensation"
	"github.com/aleclahey/payroll-backend-go/internal/domain/employee"
	"github.com/aleclahey/payroll-backend-go/internal/domain/master/department"
	"github.com/aleclahey/payroll-backend-go/internal/domain/payroll"
	"github.com/aleclahey/payroll-backend-go/internal/domain/timesheet"
	"github.com/aleclahey/payroll-backend-go/internal/pkg/restapi"
	"github.com/aleclahey/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Not found
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, compensation.ErrCompensationNotFound):
		NotFound(w, "Compensation record not found")
	case errors.Is(err, compensation.ErrDeductionNotFound):
		NotFound(w, "Deduction not found")
	case errors.Is(err, compensation.ErrPayrollMonthNotFound), errors.Is(err, payroll.ErrPayrollMonthNotFound):
		NotFound(w, "Payroll month not found")
	case errors.Is(err, payroll.ErrPaymentNotFound):
		NotFound(w, "Payment not found")
	case errors.Is(err, timesheet.ErrTimesheetNotFound):
		NotFound(w, "Timesheet not found")
	case errors.Is(err, benefit.ErrBenefitNotFound):
		NotFound(w, "Benefit not found")
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")

	default:
		handleUpstreamError(w, err)
	}
}

func handleUpstreamError(w http.ResponseWriter, err error) {
	var apiErr *restapi.APIError
	if errors.As(err, &apiErr) {
		if restapi.IsClientError(err) {
			writeJSON(w, apiErr.StatusCode, Response{
				Success: false,
				Error: &ErrorDetail{
					Code:    "UPSTREAM_REJECTED",
					Message: apiErr.Body,
				},
			})
			return
		}
		slog.Error("Upstream API failure", "method", apiErr.Method, "path", apiErr.Path, "status", apiErr.StatusCode)
		BadGateway(w, "Payroll API is unavailable")
		return
	}

	slog.Error("Unhandled error", "error", err)
	InternalServerError(w, "An unexpected error occurred")
}
