package payroll

import (
	"github.com/aleclahey/payroll-backend-go/internal/domain/compensation"
	"github.com/aleclahey/payroll-backend-go/internal/pkg/validator"
)

// PaymentResponse is a derived payment view, recomputed on every read
type PaymentResponse struct {
	ID                 int64             `json:"id" csv:"id"`
	EmployeeID         int64             `json:"employeeId" csv:"employee_id"`
	EmployeeName       string            `json:"employeeName" csv:"employee_name"`
	Type               compensation.Kind `json:"type,omitempty" csv:"type"`
	GrossPay           float64           `json:"grossPay" csv:"gross_pay"`
	Deductions         float64           `json:"deductions" csv:"deductions"`
	DeductionType      string            `json:"deductionType,omitempty" csv:"deduction_type"`
	NetPay             float64           `json:"netPay" csv:"net_pay"`
	PayPeriod          string            `json:"payPeriod" csv:"pay_period"`
	OvertimePay        float64           `json:"overtimePay" csv:"overtime_pay"`
	TotalHoursWorked   float64           `json:"totalHoursWorked" csv:"total_hours_worked"`
	TotalOvertimeHours float64           `json:"totalOvertimeHours" csv:"total_overtime_hours"`
	PayrollMonthID     *int64            `json:"payrollMonthId,omitempty" csv:"-"`
	Status             string            `json:"status,omitempty" csv:"status"`
}

type CreatePaymentRequest struct {
	EmployeeID         int64      `json:"employeeId" validate:"required,gt=0"`
	PayrollMonthID     *int64     `json:"payrollMonthId,omitempty" validate:"omitempty,gt=0"`
	OvertimePay        *float64   `json:"overtimePay,omitempty" validate:"omitempty,gte=0"`
	DeductionsID       *int64     `json:"deductionsId,omitempty" validate:"omitempty,gt=0"`
	HourlyEmployeeID   *int64     `json:"hourlyEmployeeId,omitempty" validate:"omitempty,gt=0"`
	SalariedEmployeeID *int64     `json:"salariedEmployeeId,omitempty" validate:"omitempty,gt=0"`
	PayrollPeriod      PeriodKind `json:"payrollPeriod,omitempty"`
}

func (r *CreatePaymentRequest) Validate() error {
	return validator.Struct(r)
}

// PayrollMonthSummary totals the derived payments of one payroll month
type PayrollMonthSummary struct {
	PayrollMonthID  int64             `json:"payrollMonthId"`
	PayrollMonth    string            `json:"payrollMonth"`
	Label           string            `json:"label"`
	TotalEmployees  int               `json:"totalEmployees"`
	TotalGross      float64           `json:"totalGross"`
	TotalDeductions float64           `json:"totalDeductions"`
	TotalOvertime   float64           `json:"totalOvertime"`
	TotalNet        float64           `json:"totalNet"`
	Payments        []PaymentResponse `json:"payments"`
}
