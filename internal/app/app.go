// Package app wires the upstream repositories into the services shared by
// the HTTP server and the payrollctl CLI.
package app

import (
	"log/slog"

	"github.com/aleclahey/payroll-backend-go/internal/config"
	"github.com/aleclahey/payroll-backend-go/internal/domain/benefit"
	"github.com/aleclahey/payroll-backend-go/internal/domain/compensation"
	"github.com/aleclahey/payroll-backend-go/internal/domain/dashboard"
	"github.com/aleclahey/payroll-backend-go/internal/domain/employee"
	"github.com/aleclahey/payroll-backend-go/internal/domain/payroll"
	"github.com/aleclahey/payroll-backend-go/internal/domain/timesheet"
	"github.com/aleclahey/payroll-backend-go/internal/pkg/payslip"
	"github.com/aleclahey/payroll-backend-go/internal/pkg/restapi"
	"github.com/aleclahey/payroll-backend-go/internal/repository/upstream"
	benefitService "github.com/aleclahey/payroll-backend-go/internal/service/benefit"
	compensationService "github.com/aleclahey/payroll-backend-go/internal/service/compensation"
	dashboardService "github.com/aleclahey/payroll-backend-go/internal/service/dashboard"
	employeeService "github.com/aleclahey/payroll-backend-go/internal/service/employee"
	"github.com/aleclahey/payroll-backend-go/internal/service/master"
	payrollService "github.com/aleclahey/payroll-backend-go/internal/service/payroll"
	timesheetService "github.com/aleclahey/payroll-backend-go/internal/service/timesheet"
)

type Services struct {
	Employee     employee.EmployeeService
	Compensation compensation.CompensationService
	Master       master.MasterService
	Timesheet    timesheet.TimesheetService
	Benefit      benefit.BenefitService
	Payroll      payroll.PayrollService
	Dashboard    dashboard.DashboardService
}

func NewServices(cfg *config.Config, logger *slog.Logger) *Services {
	client := restapi.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, logger)

	employeeRepo := upstream.NewEmployeeRepository(client)
	departmentRepo := upstream.NewDepartmentRepository(client)
	positionRepo := upstream.NewPositionRepository(client)
	hourlyRepo := upstream.NewHourlyRepository(client)
	salariedRepo := upstream.NewSalariedRepository(client)
	deductionRepo := upstream.NewDeductionRepository(client)
	payrollMonthRepo := upstream.NewPayrollMonthRepository(client)
	timesheetRepo := upstream.NewTimesheetRepository(client)

	compensationSvc := compensationService.NewCompensationService(hourlyRepo, salariedRepo, deductionRepo, payrollMonthRepo, employeeRepo)
	employeeSvc := employeeService.NewEmployeeService(
		employeeRepo,
		upstream.NewPersonalDayRepository(client),
		upstream.NewBankInformationRepository(client),
		departmentRepo,
		positionRepo,
		hourlyRepo,
		salariedRepo,
		compensationSvc,
	)
	masterSvc := master.NewMasterService(
		departmentRepo,
		positionRepo,
		upstream.NewAddressTypeRepository(client),
		upstream.NewAddressRepository(client),
		employeeRepo,
	)
	timesheetSvc := timesheetService.NewTimesheetService(timesheetRepo, upstream.NewHoursWorkedRepository(client), employeeRepo, departmentRepo)
	benefitSvc := benefitService.NewBenefitService(upstream.NewBenefitRepository(client), employeeRepo)
	payrollSvc := payrollService.NewPayrollService(
		upstream.NewPaymentRepository(client),
		employeeRepo,
		deductionRepo,
		timesheetRepo,
		hourlyRepo,
		salariedRepo,
		payrollMonthRepo,
		payroll.PeriodKind(cfg.Payroll.DefaultPeriod),
		payslip.NewRenderer(cfg.Payroll.Currency),
	)

	return &Services{
		Employee:     employeeSvc,
		Compensation: compensationSvc,
		Master:       masterSvc,
		Timesheet:    timesheetSvc,
		Benefit:      benefitSvc,
		Payroll:      payrollSvc,
		Dashboard:    dashboardService.NewDashboardService(payrollSvc, timesheetSvc, benefitSvc, employeeSvc, masterSvc),
	}
}
