package benefit

type Status string

const (
	StatusActive   Status = "active"
	StatusPending  Status = "pending"
	StatusInactive Status = "inactive"
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusPending || s == StatusInactive
}

// Benefit enrolls an employee in a plan, referenced by plan name
type Benefit struct {
	ID          int64
	EmployeeID  int64
	BenefitPlan string
	Status      Status
}

// Plan is compiled-in reference data, the upstream API does not serve plans
type Plan struct {
	ID                   int64   `json:"id"`
	Name                 string  `json:"name"`
	Description          string  `json:"description"`
	Provider             string  `json:"provider"`
	MonthlyCost          float64 `json:"monthlyCost"`
	EmployeeContribution float64 `json:"employeeContribution"`
	EmployerContribution float64 `json:"employerContribution"`
	Category             string  `json:"category"`
}

var plans = []Plan{
	{
		ID:                   1,
		Name:                 "Health Insurance",
		Description:          "Comprehensive medical coverage including doctor visits, hospital stays, and prescription drugs",
		Provider:             "BlueCross BlueShield",
		MonthlyCost:          150,
		EmployeeContribution: 150,
		EmployerContribution: 300,
		Category:             "Medical",
	},
	{
		ID:                   2,
		Name:                 "Dental Insurance",
		Description:          "Dental coverage including cleanings, fillings, and major dental work",
		Provider:             "Delta Dental",
		MonthlyCost:          75,
		EmployeeContribution: 25,
		EmployerContribution: 100,
		Category:             "Dental",
	},
	{
		ID:                   3,
		Name:                 "Vision Insurance",
		Description:          "Vision coverage including eye exams, glasses, and contact lenses",
		Provider:             "EverBlue Vision",
		MonthlyCost:          50,
		EmployeeContribution: 25,
		EmployerContribution: 100,
		Category:             "Vision",
	},
}

// Plans returns a copy of the plan table
func Plans() []Plan {
	out := make([]Plan, len(plans))
	copy(out, plans)
	return out
}

func PlanByName(name string) (Plan, bool) {
	for _, p := range plans {
		if p.Name == name {
			return p, true
		}
	}
	return Plan{}, false
}
