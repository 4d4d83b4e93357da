package dashboard

import (
	"context"

	"github.com/aleclahey/payroll-backend-go/internal/domain/benefit"
	"github.com/aleclahey/payroll-backend-go/internal/domain/dashboard"
	"github.com/aleclahey/payroll-backend-go/internal/domain/employee"
	"github.com/aleclahey/payroll-backend-go/internal/domain/master/department"
	"github.com/aleclahey/payroll-backend-go/internal/domain/payroll"
	"github.com/aleclahey/payroll-backend-go/internal/domain/timesheet"
	"golang.org/x/sync/errgroup"
)

const pendingStatus = "pending"

// DepartmentLister is the part of the master service the dashboard reads
type DepartmentLister interface {
	ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error)
}

type DashboardServiceImpl struct {
	payrollService   payroll.PayrollService
	timesheetService timesheet.TimesheetService
	benefitService   benefit.BenefitService
	employeeService  employee.EmployeeService
	departments      DepartmentLister
}

func NewDashboardService(
	payrollService payroll.PayrollService,
	timesheetService timesheet.TimesheetService,
	benefitService benefit.BenefitService,
	employeeService employee.EmployeeService,
	departments DepartmentLister,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		payrollService:   payrollService,
		timesheetService: timesheetService,
		benefitService:   benefitService,
		employeeService:  employeeService,
		departments:      departments,
	}
}

// GetDashboard returns combined dashboard data using parallel goroutines
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (*dashboard.DashboardResponse, error) {
	var (
		employees   []employee.EmployeeResponse
		payments    []payroll.PaymentResponse
		timesheets  []timesheet.TimesheetResponse
		hours       []timesheet.HoursWorkedResponse
		benefits    []benefit.BenefitResponse
		departments []department.DepartmentResponse
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		employees, err = s.employeeService.ListEmployees(gCtx)
		return err
	})
	g.Go(func() (err error) {
		payments, err = s.payrollService.ListPayments(gCtx)
		return err
	})
	g.Go(func() (err error) {
		timesheets, err = s.timesheetService.ListTimesheets(gCtx)
		return err
	})
	g.Go(func() (err error) {
		hours, err = s.timesheetService.ListHoursWorked(gCtx)
		return err
	})
	g.Go(func() (err error) {
		benefits, err = s.benefitService.ListBenefits(gCtx)
		return err
	})
	g.Go(func() (err error) {
		departments, err = s.departments.ListDepartments(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	resp := &dashboard.DashboardResponse{
		TotalEmployees: len(employees),
		Departments:    departments,
	}

	for _, p := range payments {
		resp.TotalPayroll += p.NetPay
		if p.Status == pendingStatus {
			resp.PendingPayments++
		}
	}
	for _, ts := range timesheets {
		if ts.Status == timesheet.StatusPending {
			resp.PendingTimesheets++
		}
	}
	for _, h := range hours {
		resp.TotalHoursThisWeek += h.WeeklyHours
	}
	for _, b := range benefits {
		if b.Status == benefit.StatusActive {
			resp.ActiveBenefits++
			resp.TotalBenefitCost += b.Cost
		}
	}

	resp.TotalPayroll = payroll.Round2(resp.TotalPayroll)
	resp.TotalHoursThisWeek = payroll.Round2(resp.TotalHoursThisWeek)
	resp.TotalBenefitCost = payroll.Round2(resp.TotalBenefitCost)
	if resp.Departments == nil {
		resp.Departments = []department.DepartmentResponse{}
	}
	return resp, nil
}
