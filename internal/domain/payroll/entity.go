package payroll

// PeriodKind selects how a salary is split into one payment
type PeriodKind string

const (
	PeriodMonthly  PeriodKind = "monthly"
	PeriodBiweekly PeriodKind = "biweekly"
)

// Payment is the stored payment row. Pay amounts are never read from it,
// they are derived again on every read.
type Payment struct {
	ID                 int64
	EmployeeID         int64
	PayrollMonthID     *int64
	PayrollMonthName   string
	DeductionID        *int64
	DeductionType      string
	HourlyEmployeeID   *int64
	SalariedEmployeeID *int64
	OvertimePay        *float64
	PayrollPeriod      PeriodKind
	Status             string
}

// Breakdown is the outcome of ComputePayment
type Breakdown struct {
	TotalHoursWorked   float64
	TotalOvertimeHours float64
	RegularHours       float64
	RegularPay         float64
	OvertimePay        float64
	GrossPay           float64
	DeductionAmount    float64
	NetPay             float64
}
