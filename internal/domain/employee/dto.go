package employee

import (
	"github.com/aleclahey/payroll-backend-go/internal/domain/compensation"
	"github.com/aleclahey/payroll-backend-go/internal/pkg/validator"
)

// EmployeeRequest is the employee form. Type together with HourlyRate or
// Salary also upserts the compensation record after the employee is saved.
type EmployeeRequest struct {
	ID                int64             `json:"-"`
	FirstName         string            `json:"firstName"`
	LastName          string            `json:"lastName"`
	Gender            Gender            `json:"gender"`
	HireDate          string            `json:"hireDate"`
	DepartmentID      *int64            `json:"departmentId,omitempty"`
	PositionID        *int64            `json:"positionId,omitempty"`
	ManagerEmployeeID *int64            `json:"managerEmployeeId,omitempty"`
	AddressInfoID     *int64            `json:"addressInfoId,omitempty"`
	Type              compensation.Kind `json:"type,omitempty"`
	HourlyRate        *float64          `json:"hourlyRate,omitempty"`
	Salary            *float64          `json:"salary,omitempty"`
}

func (r *EmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "firstName", Message: "firstName is required"})
	} else if len(r.FirstName) > 60 {
		errs = append(errs, validator.ValidationError{Field: "firstName", Message: "firstName must not exceed 60 characters"})
	}

	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "lastName", Message: "lastName is required"})
	} else if len(r.LastName) > 70 {
		errs = append(errs, validator.ValidationError{Field: "lastName", Message: "lastName must not exceed 70 characters"})
	}

	if !r.Gender.Valid() {
		errs = append(errs, validator.ValidationError{Field: "gender", Message: ErrInvalidGender.Error()})
	}

	if !validator.IsEmpty(r.HireDate) {
		if _, ok := validator.IsValidDate(r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "hireDate", Message: "hireDate must be in YYYY-MM-DD format"})
		}
	}

	if r.ID != 0 && r.ManagerEmployeeID != nil && *r.ManagerEmployeeID == r.ID {
		errs = append(errs, validator.ValidationError{Field: "managerEmployeeId", Message: ErrSelfManagement.Error()})
	}

	if r.Type != "" {
		if !r.Type.Valid() {
			errs = append(errs, validator.ValidationError{Field: "type", Message: compensation.ErrInvalidKind.Error()})
		} else if r.Type == compensation.KindHourly && r.HourlyRate != nil && *r.HourlyRate < 0 {
			errs = append(errs, validator.ValidationError{Field: "hourlyRate", Message: "hourlyRate must be non-negative"})
		} else if r.Type == compensation.KindSalaried && r.Salary != nil && *r.Salary < 0 {
			errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Compensation returns the upsert for this form, false when no pay data was submitted
func (r *EmployeeRequest) Compensation(employeeID int64) (compensation.UpsertRequest, bool) {
	req := compensation.UpsertRequest{
		EmployeeID: employeeID,
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		HireDate:   r.HireDate,
		Kind:       r.Type,
	}
	switch r.Type {
	case compensation.KindHourly:
		req.HourlyRate = r.HourlyRate
		return req, r.HourlyRate != nil
	case compensation.KindSalaried:
		req.SalaryAmount = r.Salary
		return req, r.Salary != nil
	default:
		return req, false
	}
}

type EmployeeResponse struct {
	ID                int64             `json:"id"`
	FirstName         string            `json:"firstName"`
	LastName          string            `json:"lastName"`
	Name              string            `json:"name"`
	Gender            Gender            `json:"gender"`
	HireDate          string            `json:"hireDate"`
	ManagerEmployeeID *int64            `json:"managerEmployeeId"`
	DepartmentID      *int64            `json:"departmentId"`
	PositionID        *int64            `json:"positionId"`
	AddressInfoID     *int64            `json:"addressInfoId"`
	LastUpdated       string            `json:"lastUpdated"`
	Department        string            `json:"department"`
	Position          string            `json:"position"`
	Type              compensation.Kind `json:"type"`
	Salary            *float64          `json:"salary"`
	HourlyRate        *float64          `json:"hourlyRate"`
}

type SaveOutcome string

const (
	OutcomeSaved              SaveOutcome = "saved"
	OutcomeCompensationFailed SaveOutcome = "employee_saved_compensation_failed"
	OutcomeNothingSaved       SaveOutcome = "nothing_saved"
)

// SaveResponse tells the caller which of the independent writes stuck
type SaveResponse struct {
	Outcome      SaveOutcome                  `json:"outcome"`
	Employee     *EmployeeResponse            `json:"employee,omitempty"`
	Compensation *compensation.UpsertResponse `json:"compensation,omitempty"`
	Warnings     []string                     `json:"warnings,omitempty"`
}

type PersonalDayResponse struct {
	ID         int64   `json:"id"`
	EmployeeID int64   `json:"employeeId"`
	PDType     string  `json:"pdType"`
	Paid       bool    `json:"paid"`
	DaysOff    float64 `json:"daysOff"`
}

type BankInformationResponse struct {
	ID                int64  `json:"id"`
	EmployeeID        int64  `json:"employeeId"`
	BankInstitution   string `json:"bankInstitution"`
	InstitutionNumber string `json:"institutionNumber"`
	AccountNumber     string `json:"accountNumber"`
	TransitNumber     string `json:"transitNumber"`
}
