package employee

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aleclahey/payroll-backend-go/internal/domain/compensation"
	"github.com/aleclahey/payroll-backend-go/internal/domain/employee"
	"github.com/aleclahey/payroll-backend-go/internal/domain/master/department"
	"github.com/aleclahey/payroll-backend-go/internal/domain/master/position"
	"golang.org/x/sync/errgroup"
)

type EmployeeServiceImpl struct {
	employeeRepo        employee.EmployeeRepository
	personalDayRepo     employee.PersonalDayRepository
	bankInformationRepo employee.BankInformationRepository
	departmentRepo      department.DepartmentRepository
	positionRepo        position.PositionRepository
	hourlyRepo          compensation.HourlyRepository
	salariedRepo        compensation.SalariedRepository
	compensationService compensation.CompensationService
	now                 func() time.Time
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	personalDayRepo employee.PersonalDayRepository,
	bankInformationRepo employee.BankInformationRepository,
	departmentRepo department.DepartmentRepository,
	positionRepo position.PositionRepository,
	hourlyRepo compensation.HourlyRepository,
	salariedRepo compensation.SalariedRepository,
	compensationService compensation.CompensationService,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo:        employeeRepo,
		personalDayRepo:     personalDayRepo,
		bankInformationRepo: bankInformationRepo,
		departmentRepo:      departmentRepo,
		positionRepo:        positionRepo,
		hourlyRepo:          hourlyRepo,
		salariedRepo:        salariedRepo,
		compensationService: compensationService,
		now:                 time.Now,
	}
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	var (
		employees   []employee.Employee
		departments []department.Department
		positions   []position.Position
		hourly      []compensation.Hourly
		salaried    []compensation.Salaried
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
	g.Go(func() (err error) {
		positions, err = s.positionRepo.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		hourly, err = s.hourlyRepo.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		salaried, err = s.salariedRepo.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	hourly = compensation.ActiveHourly(hourly, s.now())
	salaried = compensation.ActiveSalaried(salaried, s.now())

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		resp := toEmployeeResponse(e)
		resp.Department = department.NameOf(e.DepartmentID, departments)
		resp.Position = position.TitleOf(e.PositionID, positions)

		// an employee with no record at all is shown as hourly
		comp, _ := compensation.Resolve(e.ID, hourly, salaried)
		resp.Type = comp.Kind
		if h, ok := compensation.FindHourly(e.ID, hourly); ok {
			resp.HourlyRate = h.HourlyRate
		}
		if sal, ok := compensation.FindSalaried(e.ID, salaried); ok {
			resp.Salary = sal.SalaryAmount
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.EmployeeRequest) (employee.SaveResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.SaveResponse{Outcome: employee.OutcomeNothingSaved}, err
	}

	created, err := s.employeeRepo.Create(ctx, toEntity(req))
	if err != nil {
		return employee.SaveResponse{Outcome: employee.OutcomeNothingSaved}, fmt.Errorf("failed to create employee: %w", err)
	}

	return s.saveCompensation(ctx, req, created), nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.EmployeeRequest) (employee.SaveResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.SaveResponse{Outcome: employee.OutcomeNothingSaved}, err
	}

	updated, err := s.employeeRepo.Update(ctx, toEntity(req))
	if err != nil {
		return employee.SaveResponse{Outcome: employee.OutcomeNothingSaved}, err
	}

	return s.saveCompensation(ctx, req, updated), nil
}

// saveCompensation runs after the employee write has already succeeded, so
// its failures only downgrade the outcome.
func (s *EmployeeServiceImpl) saveCompensation(ctx context.Context, req employee.EmployeeRequest, saved employee.Employee) employee.SaveResponse {
	resp := toEmployeeResponse(saved)
	out := employee.SaveResponse{Outcome: employee.OutcomeSaved, Employee: &resp}

	upsert, ok := req.Compensation(saved.ID)
	if !ok {
		return out
	}
	resp.Type = upsert.Kind

	result, err := s.compensationService.Upsert(ctx, upsert)
	if err != nil {
		slog.Warn("Failed to upsert compensation for employee", "employee_id", saved.ID, "error", err)
		out.Outcome = employee.OutcomeCompensationFailed
		out.Warnings = []string{err.Error()}
		return out
	}

	compResp := compensation.NewUpsertResponse(result)
	out.Compensation = &compResp
	if result.Status != compensation.UpsertSucceeded {
		out.Outcome = employee.OutcomeCompensationFailed
		out.Warnings = result.Warnings()
	}
	if result.Record != nil {
		resp.HourlyRate = result.Record.HourlyRate
		resp.Salary = result.Record.SalaryAmount
	}
	return out
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id int64) error {
	return s.employeeRepo.Delete(ctx, id)
}

// ListPersonalDays implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListPersonalDays(ctx context.Context) ([]employee.PersonalDayResponse, error) {
	days, err := s.personalDayRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.PersonalDayResponse, 0, len(days))
	for _, d := range days {
		responses = append(responses, employee.PersonalDayResponse{
			ID:         d.ID,
			EmployeeID: d.EmployeeID,
			PDType:     d.Type,
			Paid:       d.Paid,
			DaysOff:    d.DaysOff,
		})
	}
	return responses, nil
}

// ListBankInformation implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListBankInformation(ctx context.Context) ([]employee.BankInformationResponse, error) {
	accounts, err := s.bankInformationRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.BankInformationResponse, 0, len(accounts))
	for _, a := range accounts {
		responses = append(responses, employee.BankInformationResponse{
			ID:                a.ID,
			EmployeeID:        a.EmployeeID,
			BankInstitution:   a.BankInstitution,
			InstitutionNumber: a.InstitutionNumber,
			AccountNumber:     a.AccountNumber,
			TransitNumber:     a.TransitNumber,
		})
	}
	return responses, nil
}

func toEntity(req employee.EmployeeRequest) employee.Employee {
	today := time.Now()
	e := employee.Employee{
		ID:                req.ID,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Gender:            req.Gender,
		DepartmentID:      req.DepartmentID,
		PositionID:        req.PositionID,
		ManagerEmployeeID: req.ManagerEmployeeID,
		AddressInfoID:     req.AddressInfoID,
		LastUpdated:       &today,
	}
	if t, err := time.Parse(time.DateOnly, req.HireDate); err == nil {
		e.HireDate = &t
	}
	return e
}

func toEmployeeResponse(e employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:                e.ID,
		FirstName:         e.FirstName,
		LastName:          e.LastName,
		Name:              e.FullName(),
		Gender:            e.Gender,
		HireDate:          formatDate(e.HireDate),
		ManagerEmployeeID: e.ManagerEmployeeID,
		DepartmentID:      e.DepartmentID,
		PositionID:        e.PositionID,
		AddressInfoID:     e.AddressInfoID,
		LastUpdated:       formatDate(e.LastUpdated),
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.DateOnly)
}
