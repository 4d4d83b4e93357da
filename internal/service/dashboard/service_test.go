package dashboard

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/aleclahey/payroll-backend-go/internal/domain/dashboard"
	"github.com/aleclahey/payroll-backend-go/internal/domain/payroll"
	"github.com/aleclahey/payroll-backend-go/internal/pkg/payslip"
	"github.com/aleclahey/payroll-backend-go/internal/pkg/restapi"
	"github.com/aleclahey/payroll-backend-go/internal/pkg/restapi/restapitest"
	"github.com/aleclahey/payroll-backend-go/internal/repository/upstream"
	benefitService "github.com/aleclahey/payroll-backend-go/internal/service/benefit"
	compensationService "github.com/aleclahey/payroll-backend-go/internal/service/compensation"
	employeeService "github.com/aleclahey/payroll-backend-go/internal/service/employee"
	masterService "github.com/aleclahey/payroll-backend-go/internal/service/master"
	payrollService "github.com/aleclahey/payroll-backend-go/internal/service/payroll"
	timesheetService "github.com/aleclahey/payroll-backend-go/internal/service/timesheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (dashboard.DashboardService, *restapitest.Server) {
	t.Helper()
	srv := restapitest.NewServer(t)
	client := restapi.NewClient(srv.BaseURL(), 5*time.Second, nil)

	employeeRepo := upstream.NewEmployeeRepository(client)
	departmentRepo := upstream.NewDepartmentRepository(client)
	hourlyRepo := upstream.NewHourlyRepository(client)
	salariedRepo := upstream.NewSalariedRepository(client)
	deductionRepo := upstream.NewDeductionRepository(client)
	payrollMonthRepo := upstream.NewPayrollMonthRepository(client)
	timesheetRepo := upstream.NewTimesheetRepository(client)

	compensation := compensationService.NewCompensationService(hourlyRepo, salariedRepo, deductionRepo, payrollMonthRepo, employeeRepo)

	svc := NewDashboardService(
		payrollService.NewPayrollService(
			upstream.NewPaymentRepository(client), employeeRepo, deductionRepo, timesheetRepo,
			hourlyRepo, salariedRepo, payrollMonthRepo, payroll.PeriodMonthly, payslip.NewRenderer("USD"),
		),
		timesheetService.NewTimesheetService(timesheetRepo, upstream.NewHoursWorkedRepository(client), employeeRepo, departmentRepo),
		benefitService.NewBenefitService(upstream.NewBenefitRepository(client), employeeRepo),
		employeeService.NewEmployeeService(
			employeeRepo, upstream.NewPersonalDayRepository(client), upstream.NewBankInformationRepository(client),
			departmentRepo, upstream.NewPositionRepository(client), hourlyRepo, salariedRepo, compensation,
		),
		masterService.NewMasterService(
			departmentRepo, upstream.NewPositionRepository(client), upstream.NewAddressTypeRepository(client),
			upstream.NewAddressRepository(client), employeeRepo,
		),
	)
	return svc, srv
}

func TestGetDashboard(t *testing.T) {
	svc, srv := newTestService(t)

	srv.Seed("departments", map[string]any{"departmentname": "Engineering"})
	srv.Seed("employees",
		map[string]any{"firstname": "Ada", "lastname": "Lovelace", "department": 1},
		map[string]any{"firstname": "Grace", "lastname": "Hopper", "department": 1},
	)
	srv.Seed("deductions", map[string]any{"deductiontype": "Standard Hourly", "deductionamount": "40.00"})
	srv.Seed("hourly-employees", map[string]any{"employee": 1, "hourlyrate": 20, "deduction": 1})
	srv.Seed("salaried-employees", map[string]any{"employee": 2, "salaryamount": "60000.00"})
	srv.Seed("timesheets",
		map[string]any{"employee": 1, "clockin": "08:00:00", "clockout": "18:00:00"},
		map[string]any{"employee": 1, "clockin": "09:00:00", "clockout": "15:00:00"},
		map[string]any{"employee": 2, "clockin": "09:00:00", "clockout": "09:00:00"},
	)
	srv.Seed("payments",
		map[string]any{"employee": 1, "deductions": 1, "status": "pending"},
		map[string]any{"employee": 2, "status": "paid"},
		map[string]any{"employee": 77, "status": "pending"},
	)
	srv.Seed("benefits",
		map[string]any{"employee": 1, "benefitplan": "Health Insurance", "status": "active"},
		map[string]any{"employee": 2, "benefitplan": "Dental Insurance"},
		map[string]any{"employee": 2, "benefitplan": "Vision Insurance", "status": "pending"},
	)

	resp, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, resp.TotalEmployees)
	// 300 hourly net plus 5000 salaried gross; the unknown employee's payment is dropped
	assert.Equal(t, 5300.0, resp.TotalPayroll)
	assert.Equal(t, 1, resp.PendingPayments)
	assert.Equal(t, 1, resp.PendingTimesheets)
	assert.Equal(t, 80.0, resp.TotalHoursThisWeek)
	assert.Equal(t, 2, resp.ActiveBenefits)
	assert.Equal(t, 225.0, resp.TotalBenefitCost)
	require.Len(t, resp.Departments, 1)
	assert.Equal(t, 2, resp.Departments[0].EmployeeCount)
}

func TestGetDashboard_Empty(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)
	assert.Zero(t, resp.TotalEmployees)
	assert.Zero(t, resp.TotalPayroll)
	assert.NotNil(t, resp.Departments)
}

func TestGetDashboard_FailsWhenAnyViewFails(t *testing.T) {
	svc, srv := newTestService(t)
	srv.Fail(http.MethodGet, "benefits", http.StatusBadGateway)

	resp, err := svc.GetDashboard(context.Background())
	require.Error(t, err)
	assert.Nil(t, resp)
}
