package employee

import (
	"strings"
	"time"
)

type Employee struct {
	ID                int64
	FirstName         string
	LastName          string
	Gender            Gender
	HireDate          *time.Time
	DepartmentID      *int64
	PositionID        *int64
	ManagerEmployeeID *int64
	AddressInfoID     *int64
	LastUpdated       *time.Time
}

func (e Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

type Gender string

const (
	Male   Gender = "M"
	Female Gender = "F"
	Other  Gender = "X"
)

func (g Gender) Valid() bool {
	return g == Male || g == Female || g == Other
}

type PersonalDay struct {
	ID         int64
	EmployeeID int64
	Type       string
	Paid       bool
	DaysOff    float64
}

type BankInformation struct {
	ID                int64
	EmployeeID        int64
	BankInstitution   string
	InstitutionNumber string
	AccountNumber     string
	TransitNumber     string
}

// Find returns the employee with id, if fetched
func Find(id int64, employees []Employee) (Employee, bool) {
	for _, e := range employees {
		if e.ID == id {
			return e, true
		}
	}
	return Employee{}, false
}

// NameOf falls back to "Unknown" for ids missing from employees
func NameOf(id int64, employees []Employee) string {
	if e, ok := Find(id, employees); ok {
		return e.FullName()
	}
	return "Unknown"
}
