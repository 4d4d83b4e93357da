package timesheet

import (
	"context"
	"time"

	"github.com/aleclahey/payroll-backend-go/internal/domain/employee"
	"github.com/aleclahey/payroll-backend-go/internal/domain/master/department"
	"github.com/aleclahey/payroll-backend-go/internal/domain/timesheet"
	"golang.org/x/sync/errgroup"
)

const (
	defaultWeeklyHours   = 40.0
	defaultOvertimeHours = 0.0
)

type TimesheetServiceImpl struct {
	timesheetRepo   timesheet.TimesheetRepository
	hoursWorkedRepo timesheet.HoursWorkedRepository
	employeeRepo    employee.EmployeeRepository
	departmentRepo  department.DepartmentRepository
	now             func() time.Time
}

func NewTimesheetService(
	timesheetRepo timesheet.TimesheetRepository,
	hoursWorkedRepo timesheet.HoursWorkedRepository,
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
) timesheet.TimesheetService {
	return &TimesheetServiceImpl{
		timesheetRepo:   timesheetRepo,
		hoursWorkedRepo: hoursWorkedRepo,
		employeeRepo:    employeeRepo,
		departmentRepo:  departmentRepo,
		now:             time.Now,
	}
}

// ListTimesheets implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ListTimesheets(ctx context.Context) ([]timesheet.TimesheetResponse, error) {
	var (
		timesheets  []timesheet.Timesheet
		employees   []employee.Employee
		departments []department.Department
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		timesheets, err = s.timesheetRepo.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		employees, err = s.employeeRepo.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		departments, err = s.departmentRepo.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	responses := make([]timesheet.TimesheetResponse, 0, len(timesheets))
	for _, ts := range timesheets {
		responses = append(responses, s.toResponse(ts, employees, departments))
	}
	return responses, nil
}

// CreateTimesheet implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) CreateTimesheet(ctx context.Context, req timesheet.TimesheetRequest) (timesheet.TimesheetResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	created, err := s.timesheetRepo.Create(ctx, req)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}
	return s.enrich(ctx, created)
}

// UpdateTimesheet implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) UpdateTimesheet(ctx context.Context, req timesheet.TimesheetRequest) (timesheet.TimesheetResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	updated, err := s.timesheetRepo.Update(ctx, req)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}
	return s.enrich(ctx, updated)
}

// DeleteTimesheet implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) DeleteTimesheet(ctx context.Context, id int64) error {
	return s.timesheetRepo.Delete(ctx, id)
}

// ListHoursWorked implements timesheet.TimesheetService. The upstream keeps
// hours per payroll month rather than per employee, so one summary record
// is reported for every employee.
func (s *TimesheetServiceImpl) ListHoursWorked(ctx context.Context) ([]timesheet.HoursWorkedResponse, error) {
	var (
		hours       []timesheet.HoursWorked
		employees   []employee.Employee
		departments []department.Department
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		hours, err = s.hoursWorkedRepo.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		employees, err = s.employeeRepo.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		departments, err = s.departmentRepo.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	weekly, overtime := defaultWeeklyHours, defaultOvertimeHours
	if summary, ok := firstSummary(hours); ok {
		if summary.HoursWorked != nil && *summary.HoursWorked != 0 {
			weekly = *summary.HoursWorked
		}
		if summary.OvertimeHours != nil {
			overtime = *summary.OvertimeHours
		}
	}

	responses := make([]timesheet.HoursWorkedResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, timesheet.HoursWorkedResponse{
			EmployeeID:    e.ID,
			EmployeeName:  e.FullName(),
			WeeklyHours:   weekly,
			OvertimeHours: overtime,
			Department:    department.NameOf(e.DepartmentID, departments),
		})
	}
	return responses, nil
}

// firstSummary picks the first record of the lowest payroll month id.
// Records without a payroll month are only used when nothing else exists.
func firstSummary(hours []timesheet.HoursWorked) (timesheet.HoursWorked, bool) {
	var (
		best  timesheet.HoursWorked
		found bool
	)
	for _, h := range hours {
		switch {
		case !found:
			best, found = h, true
		case h.PayrollMonthID == nil:
		case best.PayrollMonthID == nil || *h.PayrollMonthID < *best.PayrollMonthID:
			best = h
		}
	}
	return best, found
}

func (s *TimesheetServiceImpl) enrich(ctx context.Context, ts timesheet.Timesheet) (timesheet.TimesheetResponse, error) {
	var (
		employees   []employee.Employee
		departments []department.Department
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		employees, err = s.employeeRepo.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		departments, err = s.departmentRepo.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return timesheet.TimesheetResponse{}, err
	}
	return s.toResponse(ts, employees, departments), nil
}

func (s *TimesheetServiceImpl) toResponse(ts timesheet.Timesheet, employees []employee.Employee, departments []department.Department) timesheet.TimesheetResponse {
	name := ts.EmployeeName
	var departmentName string
	if e, ok := employee.Find(ts.EmployeeID, employees); ok {
		if name == "" {
			name = e.FullName()
		}
		departmentName = department.NameOf(e.DepartmentID, departments)
	}
	if name == "" {
		name = "Unknown"
	}

	return timesheet.TimesheetResponse{
		ID:            ts.ID,
		EmployeeID:    ts.EmployeeID,
		EmployeeName:  name,
		Date:          s.now().Format(time.DateOnly),
		ClockIn:       ts.ClockIn,
		ClockOut:      ts.ClockOut,
		HoursWorked:   ts.HoursWorked,
		BreakTime:     timesheet.DefaultBreakMinutes,
		TotalHours:    ts.HoursWorked,
		OvertimeHours: ts.OvertimeHours,
		Status:        ts.Status,
		Department:    departmentName,
	}
}
