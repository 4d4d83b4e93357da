package timesheet

import (
	"github.com/aleclahey/payroll-backend-go/internal/pkg/validator"
)

type TimesheetRequest struct {
	ID         int64  `json:"-"`
	EmployeeID int64  `json:"employeeId" validate:"required,gt=0"`
	ClockIn    string `json:"clockIn" validate:"required"`
	ClockOut   string `json:"clockOut" validate:"required"`
}

func (r *TimesheetRequest) Validate() error {
	if err := validator.Struct(r); err != nil {
		return err
	}

	var errs validator.ValidationErrors
	if _, ok := validator.IsValidTimeOfDay(r.ClockIn); !ok {
		errs = append(errs, validator.ValidationError{Field: "clockIn", Message: "clockIn must be in HH:MM or HH:MM:SS format"})
	}
	if _, ok := validator.IsValidTimeOfDay(r.ClockOut); !ok {
		errs = append(errs, validator.ValidationError{Field: "clockOut", Message: "clockOut must be in HH:MM or HH:MM:SS format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TimesheetResponse struct {
	ID            int64   `json:"id"`
	EmployeeID    int64   `json:"employeeId"`
	EmployeeName  string  `json:"employeeName"`
	Date          string  `json:"date"`
	ClockIn       string  `json:"clockIn"`
	ClockOut      string  `json:"clockOut"`
	HoursWorked   float64 `json:"hoursWorked"`
	BreakTime     int     `json:"breakTime"`
	TotalHours    float64 `json:"totalHours"`
	OvertimeHours float64 `json:"overtimeHours"`
	Status        Status  `json:"status"`
	Department    string  `json:"department"`
}

type HoursWorked struct {
	ID             int64
	PayrollMonthID *int64
	DaysWorked     *int64
	HoursWorked    *float64
	OvertimeHours  *float64
}

type HoursWorkedResponse struct {
	EmployeeID    int64   `json:"employeeId"`
	EmployeeName  string  `json:"employeeName"`
	WeeklyHours   float64 `json:"weeklyHours"`
	OvertimeHours float64 `json:"overtimeHours"`
	Department    string  `json:"department"`
}
