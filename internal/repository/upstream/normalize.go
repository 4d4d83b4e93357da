package upstream

import (
	"time"

	"github.com/aleclahey/payroll-backend-go/internal/pkg/restapi"
	"github.com/shopspring/decimal"
)

// Upstream collections
const (
	resDepartments     = "departments"
	resPositions       = "employee-positions"
	resAddressTypes    = "address-types"
	resAddresses       = "addresses"
	resEmployees       = "employees"
	resPayrollMonths   = "payroll-months"
	resDeductions      = "deductions"
	resHourly          = "hourly-employees"
	resSalaried        = "salaried-employees"
	resBenefits        = "benefits"
	resTimesheets      = "timesheets"
	resPersonalDays    = "personal-days"
	resBankInformation = "bank-information"
	resHoursWorked     = "hours-worked"
	resPayments        = "payments"
)

// renames maps flat upstream field names onto canonical names. Fields not
// listed keep their name.
var renames = map[string]map[string]string{
	resDepartments: {
		"departmentname": "name",
		"departmentdesc": "description",
	},
	resPositions: {
		"fromdate": "fromDate",
		"todate":   "toDate",
	},
	resAddressTypes: {
		"typename":        "name",
		"typedescription": "description",
	},
	resAddresses: {
		"postalcode":      "postalCode",
		"addresstype":     "addressTypeId",
		"addresstypeid":   "addressTypeId",
		"addresstypename": "addressTypeName",
	},
	resEmployees: {
		"firstname":        "firstName",
		"lastname":         "lastName",
		"hiredate":         "hireDate",
		"manageremployee":  "managerEmployeeId",
		"department":       "departmentId",
		"employeeposition": "positionId",
		"addressinfo":      "addressInfoId",
		"lastupdated":      "lastUpdated",
	},
	resPayrollMonths: {
		"payrollmonth": "period",
	},
	resDeductions: {
		"deductiontype":   "type",
		"deductionamount": "amount",
	},
	resHourly: {
		"employee":     "employeeId",
		"employeename": "employeeName",
		"payrollmonth": "payrollMonthId",
		"startdate":    "startDate",
		"enddate":      "endDate",
		"hourlyrate":   "hourlyRate",
		"deduction":    "deductionId",
	},
	resSalaried: {
		"employee":     "employeeId",
		"employeename": "employeeName",
		"startdate":    "startDate",
		"enddate":      "endDate",
		"salaryamount": "salaryAmount",
		"bonusamount":  "bonusAmount",
		"deduction":    "deductionId",
	},
	resBenefits: {
		"employee":     "employeeId",
		"employeename": "employeeName",
		"benefitplan":  "benefitPlan",
	},
	resTimesheets: {
		"employee":      "employeeId",
		"employeename":  "employeeName",
		"clockin":       "clockIn",
		"clockout":      "clockOut",
		"hoursworked":   "hoursWorked",
		"overtimehours": "overtimeHours",
	},
	resPersonalDays: {
		"employee": "employeeId",
		"pdtype":   "type",
		"daysoff":  "daysOff",
	},
	resBankInformation: {
		"employee":          "employeeId",
		"bankinstitution":   "bankInstitution",
		"institutionnumber": "institutionNumber",
		"accountnumber":     "accountNumber",
		"transitnumber":     "transitNumber",
	},
	resHoursWorked: {
		"payrollmonth":  "payrollMonthId",
		"daysworked":    "daysWorked",
		"hoursworked":   "hoursWorked",
		"overtimehours": "overtimeHours",
	},
	resPayments: {
		"employee":         "employeeId",
		"payrollmonth":     "payrollMonthId",
		"payrollmonthname": "payrollMonthName",
		"overtimepay":      "overtimePay",
		"deductions":       "deductionId",
		"deductiontype":    "deductionType",
		"hourlyemployee":   "hourlyEmployeeId",
		"salariedemployee": "salariedEmployeeId",
		"payrollperiod":    "payrollPeriod",
	},
}

// canonical renames the fields of one raw record. It never fails; when two
// upstream aliases map to the same name the non-null value wins.
func canonical(resource string, raw restapi.Record) restapi.Record {
	table := renames[resource]
	out := make(restapi.Record, len(raw))
	for key, value := range raw {
		name, ok := table[key]
		if !ok {
			name = key
		}
		if existing, seen := out[name]; seen && existing != nil && value == nil {
			continue
		}
		out[name] = value
	}
	return out
}

func formatDate(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(time.DateOnly)
}

func today() string {
	return time.Now().Format(time.DateOnly)
}

// money encodes a DecimalField value the way the upstream serializes it
func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func optionalMoney(v *float64) any {
	if v == nil {
		return nil
	}
	return money(*v)
}

func optionalID(id *int64) any {
	if id == nil {
		return nil
	}
	return *id
}
