package compensation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aleclahey/payroll-backend-go/internal/pkg/validator"
)

type UpsertRequest struct {
	EmployeeID   int64    `json:"employeeId"`
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	HireDate     string   `json:"hireDate"`
	Kind         Kind     `json:"type"`
	HourlyRate   *float64 `json:"hourlyRate,omitempty"`
	SalaryAmount *float64 `json:"salaryAmount,omitempty"`
}

func (r *UpsertRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "employeeId is required"})
	}

	switch r.Kind {
	case KindHourly:
		if r.HourlyRate == nil {
			errs = append(errs, validator.ValidationError{Field: "hourlyRate", Message: "hourlyRate is required for hourly employees"})
		} else if *r.HourlyRate < 0 {
			errs = append(errs, validator.ValidationError{Field: "hourlyRate", Message: "hourlyRate must be non-negative"})
		}
	case KindSalaried:
		if r.SalaryAmount == nil {
			errs = append(errs, validator.ValidationError{Field: "salaryAmount", Message: "salaryAmount is required for salaried employees"})
		} else if *r.SalaryAmount < 0 {
			errs = append(errs, validator.ValidationError{Field: "salaryAmount", Message: "salaryAmount must be non-negative"})
		}
	default:
		errs = append(errs, validator.ValidationError{Field: "type", Message: ErrInvalidKind.Error()})
	}

	if !validator.IsEmpty(r.HireDate) {
		if _, ok := validator.IsValidDate(r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "hireDate", Message: "hireDate must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Amount is the rate or salary matching Kind
func (r *UpsertRequest) Amount() float64 {
	if r.Kind == KindSalaried && r.SalaryAmount != nil {
		return *r.SalaryAmount
	}
	if r.HourlyRate != nil {
		return *r.HourlyRate
	}
	return 0
}

func (r *UpsertRequest) EmployeeName() string {
	return strings.TrimSpace(r.FirstName + " " + r.LastName)
}

type UpsertStatus string

const (
	UpsertSucceeded UpsertStatus = "succeeded"
	UpsertPartial   UpsertStatus = "partial"
	UpsertFailed    UpsertStatus = "failed"
)

type Step string

const (
	StepLookup       Step = "lookup"
	StepDeduction    Step = "deduction"
	StepPayrollMonth Step = "payroll_month"
	StepCompensation Step = "compensation"
	StepEndPrevious  Step = "end_previous"
)

type StepFailure struct {
	Step Step
	Err  error
}

func (f StepFailure) Error() string {
	return fmt.Sprintf("%s: %v", f.Step, f.Err)
}

func (f StepFailure) Unwrap() error {
	return f.Err
}

// UpsertResult reports every write the coordinator attempted. Nothing is
// rolled back, so a partial result may leave an orphaned deduction behind.
// Ended lists the records of the other kind that were closed.
type UpsertResult struct {
	Status         UpsertStatus
	Kind           Kind
	Created        bool
	Record         *Record
	Deduction      *Deduction
	PayrollMonthID *int64
	Ended          []Record
	Failures       []StepFailure
}

// Err joins the step failures, nil when the upsert fully succeeded
func (r UpsertResult) Err() error {
	if len(r.Failures) == 0 {
		return nil
	}
	errs := make([]error, 0, len(r.Failures))
	for _, f := range r.Failures {
		errs = append(errs, f)
	}
	return errors.Join(errs...)
}

func (r UpsertResult) Warnings() []string {
	warnings := make([]string, 0, len(r.Failures))
	for _, f := range r.Failures {
		warnings = append(warnings, f.Error())
	}
	return warnings
}

type UpsertResponse struct {
	Status          UpsertStatus `json:"status"`
	Type            Kind         `json:"type"`
	Created         bool         `json:"created"`
	CompensationID  *int64       `json:"compensationId,omitempty"`
	DeductionID     *int64       `json:"deductionId,omitempty"`
	DeductionAmount *float64     `json:"deductionAmount,omitempty"`
	PayrollMonthID  *int64       `json:"payrollMonthId,omitempty"`
	EndedIDs        []int64      `json:"endedCompensationIds,omitempty"`
	Warnings        []string     `json:"warnings,omitempty"`
}

func NewUpsertResponse(r UpsertResult) UpsertResponse {
	resp := UpsertResponse{
		Status:         r.Status,
		Type:           r.Kind,
		Created:        r.Created,
		PayrollMonthID: r.PayrollMonthID,
		Warnings:       r.Warnings(),
	}
	if r.Record != nil {
		id := r.Record.ID
		resp.CompensationID = &id
	}
	for _, ended := range r.Ended {
		resp.EndedIDs = append(resp.EndedIDs, ended.ID)
	}
	if r.Deduction != nil {
		id, amount := r.Deduction.ID, r.Deduction.Amount
		resp.DeductionID = &id
		resp.DeductionAmount = &amount
	}
	return resp
}

type DeductionResponse struct {
	ID              int64   `json:"id"`
	DeductionType   string  `json:"deductionType"`
	DeductionAmount float64 `json:"deductionAmount"`
}

type PayrollMonthResponse struct {
	ID              int64  `json:"id"`
	PayrollMonth    string `json:"payrollMonth"`
	RawPayrollMonth string `json:"rawPayrollMonth"`
}
