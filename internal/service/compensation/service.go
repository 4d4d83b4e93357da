package compensation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aleclahey/payroll-backend-go/internal/domain/compensation"
	"github.com/aleclahey/payroll-backend-go/internal/domain/employee"
)

type CompensationServiceImpl struct {
	hourlyRepo       compensation.HourlyRepository
	salariedRepo     compensation.SalariedRepository
	deductionRepo    compensation.DeductionRepository
	payrollMonthRepo compensation.PayrollMonthRepository
	employeeRepo     employee.EmployeeRepository
	now              func() time.Time
}

func NewCompensationService(
	hourlyRepo compensation.HourlyRepository,
	salariedRepo compensation.SalariedRepository,
	deductionRepo compensation.DeductionRepository,
	payrollMonthRepo compensation.PayrollMonthRepository,
	employeeRepo employee.EmployeeRepository,
) compensation.CompensationService {
	return &CompensationServiceImpl{
		hourlyRepo:       hourlyRepo,
		salariedRepo:     salariedRepo,
		deductionRepo:    deductionRepo,
		payrollMonthRepo: payrollMonthRepo,
		employeeRepo:     employeeRepo,
		now:              time.Now,
	}
}

// upsert collects the outcome of each step of one Upsert call
type upsert struct {
	result compensation.UpsertResult
	wrote  bool
}

func (u *upsert) fail(step compensation.Step, err error) {
	u.result.Failures = append(u.result.Failures, compensation.StepFailure{Step: step, Err: err})
}

func (u *upsert) finish() compensation.UpsertResult {
	switch {
	case len(u.result.Failures) == 0:
		u.result.Status = compensation.UpsertSucceeded
	case u.wrote:
		u.result.Status = compensation.UpsertPartial
	default:
		u.result.Status = compensation.UpsertFailed
	}
	return u.result
}

// Upsert implements compensation.CompensationService.
func (s *CompensationServiceImpl) Upsert(ctx context.Context, req compensation.UpsertRequest) (compensation.UpsertResult, error) {
	if err := req.Validate(); err != nil {
		return compensation.UpsertResult{}, err
	}

	amount, _ := compensation.StandardDeduction(req.Kind, req.Amount()).Float64()
	deduction := compensation.Deduction{Type: compensation.DeductionType(req.Kind), Amount: amount}
	startDate := s.startDate(req.HireDate)

	u := &upsert{result: compensation.UpsertResult{Kind: req.Kind}}
	if req.Kind == compensation.KindHourly {
		s.upsertHourly(ctx, req, deduction, startDate, u)
	} else {
		s.upsertSalaried(ctx, req, deduction, startDate, u)
	}
	if u.result.Record != nil {
		s.endOtherKind(ctx, req, u)
	}

	result := u.finish()
	if result.Status != compensation.UpsertSucceeded {
		slog.Warn("Compensation upsert incomplete",
			"employee_id", req.EmployeeID,
			"type", req.Kind,
			"status", result.Status,
			"error", result.Err(),
		)
	}
	return result, nil
}

func (s *CompensationServiceImpl) upsertHourly(ctx context.Context, req compensation.UpsertRequest, deduction compensation.Deduction, startDate *time.Time, u *upsert) {
	records, err := s.hourlyRepo.List(ctx)
	if err != nil {
		u.fail(compensation.StepLookup, err)
		return
	}

	existing, found := compensation.FindHourly(req.EmployeeID, compensation.ActiveHourly(records, s.now()))
	if found {
		s.updateDeduction(ctx, existing.DeductionID, deduction, u)

		monthID := existing.PayrollMonthID
		if monthID == nil {
			monthID = s.resolvePayrollMonth(ctx, u)
		}
		u.result.PayrollMonthID = monthID

		updated, err := s.hourlyRepo.Update(ctx, compensation.Hourly{
			ID:             existing.ID,
			EmployeeID:     req.EmployeeID,
			EmployeeName:   req.EmployeeName(),
			PayrollMonthID: monthID,
			StartDate:      startDate,
			EndDate:        existing.EndDate,
			HourlyRate:     req.HourlyRate,
			DeductionID:    existing.DeductionID,
		})
		if err != nil {
			u.fail(compensation.StepCompensation, err)
			return
		}
		s.recordWritten(updated.Record(), u)
		return
	}

	u.result.Created = true
	created, ok := s.createDeduction(ctx, deduction, u)
	if !ok {
		return
	}

	monthID := s.resolvePayrollMonth(ctx, u)
	u.result.PayrollMonthID = monthID

	record, err := s.hourlyRepo.Create(ctx, compensation.Hourly{
		EmployeeID:     req.EmployeeID,
		EmployeeName:   req.EmployeeName(),
		PayrollMonthID: monthID,
		StartDate:      startDate,
		HourlyRate:     req.HourlyRate,
		DeductionID:    &created.ID,
	})
	if err != nil {
		u.fail(compensation.StepCompensation, err)
		return
	}
	s.recordWritten(record.Record(), u)
}

func (s *CompensationServiceImpl) upsertSalaried(ctx context.Context, req compensation.UpsertRequest, deduction compensation.Deduction, startDate *time.Time, u *upsert) {
	records, err := s.salariedRepo.List(ctx)
	if err != nil {
		u.fail(compensation.StepLookup, err)
		return
	}

	existing, found := compensation.FindSalaried(req.EmployeeID, compensation.ActiveSalaried(records, s.now()))
	if found {
		s.updateDeduction(ctx, existing.DeductionID, deduction, u)

		updated, err := s.salariedRepo.Update(ctx, compensation.Salaried{
			ID:           existing.ID,
			EmployeeID:   req.EmployeeID,
			EmployeeName: req.EmployeeName(),
			StartDate:    startDate,
			EndDate:      existing.EndDate,
			SalaryAmount: req.SalaryAmount,
			BonusAmount:  existing.BonusAmount,
			DeductionID:  existing.DeductionID,
		})
		if err != nil {
			u.fail(compensation.StepCompensation, err)
			return
		}
		s.recordWritten(updated.Record(), u)
		return
	}

	u.result.Created = true
	created, ok := s.createDeduction(ctx, deduction, u)
	if !ok {
		return
	}

	record, err := s.salariedRepo.Create(ctx, compensation.Salaried{
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName(),
		StartDate:    startDate,
		SalaryAmount: req.SalaryAmount,
		DeductionID:  &created.ID,
	})
	if err != nil {
		u.fail(compensation.StepCompensation, err)
		return
	}
	s.recordWritten(record.Record(), u)
}

// endOtherKind ends today every active record of the other kind, so that the
// employee keeps a single active compensation record
func (s *CompensationServiceImpl) endOtherKind(ctx context.Context, req compensation.UpsertRequest, u *upsert) {
	today := s.now()

	if req.Kind == compensation.KindSalaried {
		records, err := s.hourlyRepo.List(ctx)
		if err != nil {
			u.fail(compensation.StepEndPrevious, err)
			return
		}
		for _, h := range compensation.ActiveHourly(records, today) {
			if h.EmployeeID != req.EmployeeID {
				continue
			}
			h.EndDate = &today
			if _, err := s.hourlyRepo.Update(ctx, h); err != nil {
				u.fail(compensation.StepEndPrevious, err)
				continue
			}
			u.result.Ended = append(u.result.Ended, h.Record())
		}
		return
	}

	records, err := s.salariedRepo.List(ctx)
	if err != nil {
		u.fail(compensation.StepEndPrevious, err)
		return
	}
	for _, sal := range compensation.ActiveSalaried(records, today) {
		if sal.EmployeeID != req.EmployeeID {
			continue
		}
		sal.EndDate = &today
		if _, err := s.salariedRepo.Update(ctx, sal); err != nil {
			u.fail(compensation.StepEndPrevious, err)
			continue
		}
		u.result.Ended = append(u.result.Ended, sal.Record())
	}
}

// updateDeduction rewrites the referenced deduction in place. A record
// without a deduction is left without one.
func (s *CompensationServiceImpl) updateDeduction(ctx context.Context, id *int64, d compensation.Deduction, u *upsert) {
	if id == nil {
		return
	}
	d.ID = *id
	updated, err := s.deductionRepo.Update(ctx, d)
	if err != nil {
		u.fail(compensation.StepDeduction, err)
		return
	}
	u.result.Deduction = &updated
	u.wrote = true
}

// createDeduction reports false when the record must not be created
func (s *CompensationServiceImpl) createDeduction(ctx context.Context, d compensation.Deduction, u *upsert) (compensation.Deduction, bool) {
	created, err := s.deductionRepo.Create(ctx, d)
	if err != nil {
		u.fail(compensation.StepDeduction, err)
		return compensation.Deduction{}, false
	}
	u.result.Deduction = &created
	u.wrote = true
	return created, true
}

func (s *CompensationServiceImpl) resolvePayrollMonth(ctx context.Context, u *upsert) *int64 {
	id, err := s.CurrentPayrollMonth(ctx)
	if err != nil {
		u.fail(compensation.StepPayrollMonth, err)
	}
	return id
}

func (s *CompensationServiceImpl) recordWritten(r compensation.Record, u *upsert) {
	u.result.Record = &r
	u.wrote = true
}

func (s *CompensationServiceImpl) startDate(hireDate string) *time.Time {
	if t, err := time.Parse(time.DateOnly, hireDate); err == nil {
		return &t
	}
	today := s.now()
	return &today
}

// UpsertForEmployee implements compensation.CompensationService.
func (s *CompensationServiceImpl) UpsertForEmployee(ctx context.Context, employeeID int64, kind compensation.Kind, amount float64) (compensation.UpsertResult, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return compensation.UpsertResult{}, err
	}

	req := compensation.UpsertRequest{
		EmployeeID: emp.ID,
		FirstName:  emp.FirstName,
		LastName:   emp.LastName,
		Kind:       kind,
	}
	if emp.HireDate != nil {
		req.HireDate = emp.HireDate.Format(time.DateOnly)
	}
	switch kind {
	case compensation.KindHourly:
		req.HourlyRate = &amount
	case compensation.KindSalaried:
		req.SalaryAmount = &amount
	}

	return s.Upsert(ctx, req)
}

// CurrentPayrollMonth implements compensation.CompensationService.
func (s *CompensationServiceImpl) CurrentPayrollMonth(ctx context.Context) (*int64, error) {
	period := compensation.PeriodKey(s.now())

	id, err := s.findOrCreatePayrollMonth(ctx, period)
	if err == nil {
		return &id, nil
	}
	slog.Warn("Failed to get or create payroll month", "period", period, "error", err)

	months, listErr := s.payrollMonthRepo.List(ctx)
	if listErr != nil {
		return nil, errors.Join(err, listErr)
	}
	if len(months) == 0 {
		return nil, err
	}
	return &months[0].ID, nil
}

func (s *CompensationServiceImpl) findOrCreatePayrollMonth(ctx context.Context, period string) (int64, error) {
	months, err := s.payrollMonthRepo.List(ctx)
	if err != nil {
		return 0, err
	}
	for _, m := range months {
		if m.Period == period {
			return m.ID, nil
		}
	}

	created, err := s.payrollMonthRepo.Create(ctx, period)
	if err != nil {
		return 0, err
	}
	return created.ID, nil
}

// ListDeductions implements compensation.CompensationService.
func (s *CompensationServiceImpl) ListDeductions(ctx context.Context) ([]compensation.DeductionResponse, error) {
	deductions, err := s.deductionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list deductions: %w", err)
	}

	responses := make([]compensation.DeductionResponse, 0, len(deductions))
	for _, d := range deductions {
		responses = append(responses, compensation.DeductionResponse{
			ID:              d.ID,
			DeductionType:   d.Type,
			DeductionAmount: d.Amount,
		})
	}
	return responses, nil
}

// ListPayrollMonths implements compensation.CompensationService.
func (s *CompensationServiceImpl) ListPayrollMonths(ctx context.Context) ([]compensation.PayrollMonthResponse, error) {
	months, err := s.payrollMonthRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll months: %w", err)
	}

	responses := make([]compensation.PayrollMonthResponse, 0, len(months))
	for _, m := range months {
		responses = append(responses, compensation.PayrollMonthResponse{
			ID:              m.ID,
			PayrollMonth:    m.Label(),
			RawPayrollMonth: m.Period,
		})
	}
	return responses, nil
}
