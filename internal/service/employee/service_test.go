package employee

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/aleclahey/payroll-backend-go/internal/domain/compensation"
	"github.com/aleclahey/payroll-backend-go/internal/domain/employee"
	"github.com/aleclahey/payroll-backend-go/internal/pkg/restapi"
	"github.com/aleclahey/payroll-backend-go/internal/pkg/restapi/restapitest"
	"github.com/aleclahey/payroll-backend-go/internal/pkg/validator"
	"github.com/aleclahey/payroll-backend-go/internal/repository/upstream"
	compensationService "github.com/aleclahey/payroll-backend-go/internal/service/compensation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (employee.EmployeeService, *restapitest.Server) {
	t.Helper()
	srv := restapitest.NewServer(t)
	client := restapi.NewClient(srv.BaseURL(), 5*time.Second, nil)

	employeeRepo := upstream.NewEmployeeRepository(client)
	hourlyRepo := upstream.NewHourlyRepository(client)
	salariedRepo := upstream.NewSalariedRepository(client)

	comp := compensationService.NewCompensationService(
		hourlyRepo,
		salariedRepo,
		upstream.NewDeductionRepository(client),
		upstream.NewPayrollMonthRepository(client),
		employeeRepo,
	)

	svc := NewEmployeeService(
		employeeRepo,
		upstream.NewPersonalDayRepository(client),
		upstream.NewBankInformationRepository(client),
		upstream.NewDepartmentRepository(client),
		upstream.NewPositionRepository(client),
		hourlyRepo,
		salariedRepo,
		comp,
	)
	return svc, srv
}

func ptr[T any](v T) *T { return &v }

func TestListEmployees_JoinsNamesAndCompensation(t *testing.T) {
	svc, srv := newTestService(t)
	srv.Seed("departments", map[string]any{"departmentname": "Finance"})
	srv.Seed("employee-positions", map[string]any{"title": "Analyst"})
	srv.Seed("employees",
		map[string]any{"firstname": "Ada", "lastname": "Lovelace", "gender": "F", "department": 1, "employeeposition": 1},
		map[string]any{"firstname": "Alan", "lastname": "Turing", "gender": "M", "department": 9},
		map[string]any{"firstname": "Grace", "lastname": "Hopper", "gender": "F"},
	)
	srv.Seed("hourly-employees", map[string]any{"employee": 1, "hourlyrate": 20})
	srv.Seed("salaried-employees",
		map[string]any{"employee": 1, "salaryamount": "40000.00"},
		map[string]any{"employee": 2, "salaryamount": "70000.00"},
	)

	list, err := svc.ListEmployees(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)

	ada := list[0]
	assert.Equal(t, "Ada Lovelace", ada.Name)
	assert.Equal(t, "Finance", ada.Department)
	assert.Equal(t, "Analyst", ada.Position)
	assert.Equal(t, compensation.KindHourly, ada.Type, "hourly wins over salaried")
	require.NotNil(t, ada.HourlyRate)
	assert.Equal(t, 20.0, *ada.HourlyRate)
	require.NotNil(t, ada.Salary)

	alan := list[1]
	assert.Equal(t, "", alan.Department, "unknown department id")
	assert.Equal(t, compensation.KindSalaried, alan.Type)
	assert.Nil(t, alan.HourlyRate)

	grace := list[2]
	assert.Equal(t, compensation.KindHourly, grace.Type)
	assert.Nil(t, grace.HourlyRate)
	assert.Nil(t, grace.Salary)
}

func TestListEmployees_AnyFetchFailureFailsTheJoin(t *testing.T) {
	svc, srv := newTestService(t)
	srv.Seed("employees", map[string]any{"firstname": "Ada"})
	srv.Fail(http.MethodGet, "salaried-employees", http.StatusInternalServerError)

	list, err := svc.ListEmployees(context.Background())
	assert.Error(t, err)
	assert.Nil(t, list)
}

func TestCreateEmployee_WithCompensation(t *testing.T) {
	svc, srv := newTestService(t)

	resp, err := svc.CreateEmployee(context.Background(), employee.EmployeeRequest{
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Gender:     employee.Female,
		HireDate:   "2024-03-01",
		Type:       compensation.KindHourly,
		HourlyRate: ptr(25.0),
	})
	require.NoError(t, err)
	assert.Equal(t, employee.OutcomeSaved, resp.Outcome)
	require.NotNil(t, resp.Employee)
	assert.Equal(t, int64(1), resp.Employee.ID)
	require.NotNil(t, resp.Compensation)
	assert.Equal(t, compensation.UpsertSucceeded, resp.Compensation.Status)
	require.NotNil(t, resp.Compensation.DeductionAmount)
	assert.Equal(t, 400.0, *resp.Compensation.DeductionAmount)

	assert.Len(t, srv.Items("employees"), 1)
	assert.Len(t, srv.Items("hourly-employees"), 1)
	assert.Equal(t, time.Now().Format(time.DateOnly), srv.Items("employees")[0]["lastupdated"])
}

func TestCreateEmployee_WithoutCompensation(t *testing.T) {
	svc, srv := newTestService(t)

	resp, err := svc.CreateEmployee(context.Background(), employee.EmployeeRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Gender:    employee.Female,
	})
	require.NoError(t, err)
	assert.Equal(t, employee.OutcomeSaved, resp.Outcome)
	assert.Nil(t, resp.Compensation)
	assert.Equal(t, 0, srv.Calls(http.MethodGet, "hourly-employees"))
}

func TestCreateEmployee_CompensationFailure(t *testing.T) {
	svc, srv := newTestService(t)
	srv.Fail(http.MethodPost, "deductions", http.StatusBadRequest)

	resp, err := svc.CreateEmployee(context.Background(), employee.EmployeeRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Gender:    employee.Female,
		Type:      compensation.KindSalaried,
		Salary:    ptr(60000.0),
	})
	require.NoError(t, err)
	assert.Equal(t, employee.OutcomeCompensationFailed, resp.Outcome)
	assert.NotEmpty(t, resp.Warnings)
	require.NotNil(t, resp.Compensation)
	assert.Equal(t, compensation.UpsertFailed, resp.Compensation.Status)
	assert.Len(t, srv.Items("employees"), 1)
}

func TestCreateEmployee_NothingSaved(t *testing.T) {
	svc, srv := newTestService(t)

	resp, err := svc.CreateEmployee(context.Background(), employee.EmployeeRequest{Gender: "Q"})
	require.Error(t, err)
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
	assert.Equal(t, employee.OutcomeNothingSaved, resp.Outcome)

	srv.Fail(http.MethodPost, "employees", http.StatusInternalServerError)
	resp, err = svc.CreateEmployee(context.Background(), employee.EmployeeRequest{
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Gender:     employee.Female,
		Type:       compensation.KindHourly,
		HourlyRate: ptr(25.0),
	})
	require.Error(t, err)
	assert.Equal(t, employee.OutcomeNothingSaved, resp.Outcome)
	assert.Equal(t, 0, srv.Calls(http.MethodPost, "deductions"))
}

func TestUpdateEmployee(t *testing.T) {
	svc, srv := newTestService(t)
	srv.Seed("employees", map[string]any{"firstname": "Ada", "lastname": "Byron", "gender": "F"})

	resp, err := svc.UpdateEmployee(context.Background(), employee.EmployeeRequest{
		ID:        1,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Gender:    employee.Female,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", resp.Employee.Name)

	_, err = svc.UpdateEmployee(context.Background(), employee.EmployeeRequest{
		ID:                1,
		FirstName:         "Ada",
		LastName:          "Lovelace",
		Gender:            employee.Female,
		ManagerEmployeeID: ptr(int64(1)),
	})
	assert.Error(t, err, "an employee cannot manage themselves")

	_, err = svc.UpdateEmployee(context.Background(), employee.EmployeeRequest{
		ID:        5,
		FirstName: "Nobody",
		LastName:  "Here",
		Gender:    employee.Other,
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestUpdateEmployee_SwitchToSalaried(t *testing.T) {
	ctx := context.Background()
	svc, srv := newTestService(t)
	srv.Seed("employees", map[string]any{"firstname": "Ada", "lastname": "Lovelace", "gender": "F"})

	req := employee.EmployeeRequest{
		ID:         1,
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Gender:     employee.Female,
		Type:       compensation.KindHourly,
		HourlyRate: ptr(25.0),
	}
	_, err := svc.UpdateEmployee(ctx, req)
	require.NoError(t, err)

	req.Type, req.HourlyRate, req.Salary = compensation.KindSalaried, nil, ptr(60000.0)
	resp, err := svc.UpdateEmployee(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, employee.OutcomeSaved, resp.Outcome)

	employees, err := svc.ListEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, compensation.KindSalaried, employees[0].Type)
	assert.Nil(t, employees[0].HourlyRate, "the ended hourly rate is not shown")
	require.NotNil(t, employees[0].Salary)
	assert.Equal(t, 60000.0, *employees[0].Salary)
	assert.NotNil(t, srv.Items("hourly-employees")[0]["enddate"])
}

func TestListPersonalDaysAndBankInformation(t *testing.T) {
	svc, srv := newTestService(t)
	srv.Seed("personal-days", map[string]any{"employee": 1, "pdtype": "Sick", "paid": true, "daysoff": 1.5})
	srv.Seed("bank-information", map[string]any{"employee": 1, "bankinstitution": "RBC", "accountnumber": "0012345"})

	days, err := svc.ListPersonalDays(context.Background())
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, "Sick", days[0].PDType)
	assert.True(t, days[0].Paid)
	assert.Equal(t, 1.5, days[0].DaysOff)

	accounts, err := svc.ListBankInformation(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "0012345", accounts[0].AccountNumber)
}
