package compensation

import "github.com/shopspring/decimal"

const (
	DeductionTypeHourly   = "Standard Hourly"
	DeductionTypeSalaried = "Standard Salary"
)

var (
	// 40 hours a week over 4 weeks, independent of actual timesheets
	estimatedHoursPerMonth = decimal.NewFromInt(160)
	standardDeductionRate  = decimal.RequireFromString("0.10")
)

// DeductionType is the fixed label of the standard deduction for kind
func DeductionType(kind Kind) string {
	if kind == KindSalaried {
		return DeductionTypeSalaried
	}
	return DeductionTypeHourly
}

// StandardDeduction is 10% of estimated monthly earnings: rate*160 for
// hourly staff, the salary amount itself for salaried staff.
func StandardDeduction(kind Kind, amount float64) decimal.Decimal {
	base := decimal.NewFromFloat(amount)
	if kind == KindHourly {
		base = base.Mul(estimatedHoursPerMonth)
	}
	return base.Mul(standardDeductionRate).Round(2)
}
