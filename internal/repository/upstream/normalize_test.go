package upstream

import (
	"encoding/json"
	"testing"

	"github.com/aleclahey/payroll-backend-go/internal/domain/benefit"
	"github.com/aleclahey/payroll-backend-go/internal/domain/timesheet"
	"github.com/aleclahey/payroll-backend-go/internal/pkg/restapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonical_RenamesKnownFields(t *testing.T) {
	got := canonical(resEmployees, restapi.Record{
		"id":               json.Number("4"),
		"firstname":        "Ada",
		"manageremployee":  nil,
		"departmentname":   "Finance",
		"employeeposition": json.Number("2"),
	})

	assert.Equal(t, "Ada", got["firstName"])
	assert.Contains(t, got, "managerEmployeeId")
	assert.Nil(t, got["managerEmployeeId"])
	assert.Equal(t, "Finance", got["departmentname"], "unlisted fields keep their name")
	assert.Equal(t, int64(2), got.Int("positionId"))
	assert.NotContains(t, got, "firstname")
}

func TestCanonical_AddressTypeAliases(t *testing.T) {
	for _, raw := range []restapi.Record{
		{"addresstype": json.Number("3")},
		{"addresstypeid": json.Number("3")},
		{"addresstype": json.Number("3"), "addresstypeid": nil},
		{"addresstype": nil, "addresstypeid": json.Number("3")},
	} {
		got := decodeAddress(raw)
		require.NotNil(t, got.AddressTypeID, "%v", raw)
		assert.Equal(t, int64(3), *got.AddressTypeID)
	}
}

func TestCanonical_UnknownResource(t *testing.T) {
	got := canonical("unknown", restapi.Record{"a": 1})
	assert.Equal(t, restapi.Record{"a": 1}, got)
}

func TestDecodeEmployee_Total(t *testing.T) {
	e := decodeEmployee(restapi.Record{})
	assert.Zero(t, e.ID)
	assert.Nil(t, e.HireDate)
	assert.Nil(t, e.DepartmentID)

	e = decodeEmployee(restapi.Record{
		"id":          json.Number("9"),
		"firstname":   "Grace",
		"lastname":    "Hopper",
		"gender":      "F",
		"hiredate":    "2020-02-01",
		"department":  map[string]any{"id": json.Number("5"), "departmentname": "R&D"},
		"lastupdated": "not a date",
	})
	assert.Equal(t, int64(9), e.ID)
	assert.Equal(t, "Grace Hopper", e.FullName())
	require.NotNil(t, e.HireDate)
	assert.Equal(t, "2020-02-01", e.HireDate.Format("2006-01-02"))
	require.NotNil(t, e.DepartmentID)
	assert.Equal(t, int64(5), *e.DepartmentID)
	assert.Nil(t, e.LastUpdated)
}

func TestDecodeTimesheet_DerivesMissingFields(t *testing.T) {
	ts := decodeTimesheet(restapi.Record{
		"id":       json.Number("1"),
		"employee": json.Number("2"),
		"clockin":  "22:00:00",
		"clockout": "08:30:00",
	})
	assert.Equal(t, 10.5, ts.HoursWorked)
	assert.Equal(t, 2.5, ts.OvertimeHours)
	assert.Equal(t, timesheet.StatusCompleted, ts.Status)

	ts = decodeTimesheet(restapi.Record{
		"employee":    json.Number("2"),
		"hoursworked": json.Number("9.25"),
	})
	assert.Equal(t, 9.25, ts.HoursWorked)
	assert.Equal(t, 1.25, ts.OvertimeHours)

	ts = decodeTimesheet(restapi.Record{"employee": json.Number("2"), "clockin": "09:00"})
	assert.Zero(t, ts.HoursWorked)
	assert.Equal(t, timesheet.StatusPending, ts.Status)

	ts = decodeTimesheet(restapi.Record{"hoursworked": "4", "overtimehours": "1", "status": "approved"})
	assert.Equal(t, 1.0, ts.OvertimeHours)
	assert.Equal(t, timesheet.StatusApproved, ts.Status)
}

func TestDecodeDeduction_DecimalString(t *testing.T) {
	d := decodeDeduction(restapi.Record{
		"id":              json.Number("3"),
		"deductiontype":   "Standard Salary",
		"deductionamount": "6000.00",
	})
	assert.Equal(t, int64(3), d.ID)
	assert.Equal(t, "Standard Salary", d.Type)
	assert.Equal(t, 6000.0, d.Amount)

	assert.Zero(t, decodeDeduction(restapi.Record{"deductionamount": "n/a"}).Amount)
}

func TestDecodeBenefit_DefaultsToActive(t *testing.T) {
	b := decodeBenefit(restapi.Record{"employee": json.Number("1"), "benefitplan": "Dental Insurance"})
	assert.Equal(t, benefit.StatusActive, b.Status)

	b = decodeBenefit(restapi.Record{"status": "pending"})
	assert.Equal(t, benefit.StatusPending, b.Status)
}

func TestDecodePayment(t *testing.T) {
	p := decodePayment(restapi.Record{
		"id":               json.Number("11"),
		"employee":         json.Number("1"),
		"payrollmonth":     json.Number("2"),
		"payrollmonthname": "2025-09",
		"deductions":       json.Number("3"),
		"overtimepay":      "12.50",
		"hourlyemployee":   nil,
	})
	assert.Equal(t, int64(11), p.ID)
	require.NotNil(t, p.DeductionID)
	assert.Equal(t, int64(3), *p.DeductionID)
	require.NotNil(t, p.OvertimePay)
	assert.Equal(t, 12.5, *p.OvertimePay)
	assert.Nil(t, p.HourlyEmployeeID)
	assert.Empty(t, p.PayrollPeriod)
	assert.Equal(t, "2025-09", p.PayrollMonthName)
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "400.00", money(400))
	assert.Equal(t, "30.80", money(30.8))
	assert.Nil(t, optionalMoney(nil))
}
