package payroll

import (
	"math"

	"github.com/aleclahey/payroll-backend-go/internal/domain/compensation"
	"github.com/aleclahey/payroll-backend-go/internal/domain/employee"
	"github.com/aleclahey/payroll-backend-go/internal/domain/timesheet"
)

const overtimeMultiplier = 1.5

// Round2 rounds half away from zero at the cent using float64 arithmetic,
// so values such as 1.005 land on 1 rather than 1.01.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// ComputePayment derives the pay of emp for one period. Hourly pay comes from
// the employee's timesheets, salaried pay from splitting the salary by period.
// A record of unknown kind pays nothing. A nil deduction deducts 0.
func ComputePayment(
	emp employee.Employee,
	comp compensation.Record,
	timesheets []timesheet.Timesheet,
	deduction *compensation.Deduction,
	period PeriodKind,
) Breakdown {
	var b Breakdown

	switch comp.Kind {
	case compensation.KindHourly:
		for _, ts := range timesheet.ForEmployee(emp.ID, timesheets) {
			b.TotalHoursWorked += ts.HoursWorked
			b.TotalOvertimeHours += ts.OvertimeHours
		}
		rate := 0.0
		if comp.HourlyRate != nil {
			rate = *comp.HourlyRate
		}
		b.RegularHours = b.TotalHoursWorked - b.TotalOvertimeHours
		b.RegularPay = rate * b.RegularHours
		b.OvertimePay = rate * overtimeMultiplier * b.TotalOvertimeHours
		b.GrossPay = b.RegularPay + b.OvertimePay

	case compensation.KindSalaried:
		salary := 0.0
		if comp.SalaryAmount != nil {
			salary = *comp.SalaryAmount
		}
		switch period {
		case PeriodMonthly:
			b.GrossPay = salary / 12
		case PeriodBiweekly:
			b.GrossPay = salary / 26
		default:
			b.GrossPay = salary
		}
		b.GrossPay = Round2(b.GrossPay)
	}

	if deduction != nil {
		b.DeductionAmount = deduction.Amount
	}
	b.NetPay = Round2(b.GrossPay - b.DeductionAmount)
	b.GrossPay = Round2(b.GrossPay)
	b.OvertimePay = Round2(b.OvertimePay)

	return b
}
