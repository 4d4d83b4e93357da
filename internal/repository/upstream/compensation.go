package upstream

import (
	"context"
	"fmt"

	"github.com/aleclahey/payroll-backend-go/internal/domain/compensation"
	"github.com/aleclahey/payroll-backend-go/internal/pkg/restapi"
)

type hourlyRepositoryImpl struct {
	client *restapi.Client
}

func NewHourlyRepository(client *restapi.Client) compensation.HourlyRepository {
	return &hourlyRepositoryImpl{client: client}
}

func decodeHourly(raw restapi.Record) compensation.Hourly {
	r := canonical(resHourly, raw)
	return compensation.Hourly{
		ID:             r.Int("id"),
		EmployeeID:     r.Int("employeeId"),
		EmployeeName:   r.String("employeeName"),
		PayrollMonthID: r.IntPtr("payrollMonthId"),
		StartDate:      r.Time("startDate"),
		EndDate:        r.Time("endDate"),
		HourlyRate:     r.FloatPtr("hourlyRate"),
		DeductionID:    r.IntPtr("deductionId"),
	}
}

func encodeHourly(h compensation.Hourly) map[string]any {
	body := map[string]any{
		"employee":     h.EmployeeID,
		"employeename": h.EmployeeName,
		"payrollmonth": optionalID(h.PayrollMonthID),
		"startdate":    formatDate(h.StartDate),
		"enddate":      formatDate(h.EndDate),
		"deduction":    optionalID(h.DeductionID),
		"hourlyrate":   nil,
	}
	if h.HourlyRate != nil {
		body["hourlyrate"] = *h.HourlyRate
	}
	return body
}

// List implements compensation.HourlyRepository.
func (r *hourlyRepositoryImpl) List(ctx context.Context) ([]compensation.Hourly, error) {
	records, err := r.client.List(ctx, resHourly)
	if err != nil {
		return nil, fmt.Errorf("failed to list hourly employees: %w", err)
	}

	rows := make([]compensation.Hourly, 0, len(records))
	for _, rec := range records {
		rows = append(rows, decodeHourly(rec))
	}
	return rows, nil
}

// Create implements compensation.HourlyRepository.
func (r *hourlyRepositoryImpl) Create(ctx context.Context, h compensation.Hourly) (compensation.Hourly, error) {
	rec, err := r.client.Create(ctx, resHourly, encodeHourly(h))
	if err != nil {
		return compensation.Hourly{}, fmt.Errorf("failed to create hourly employee: %w", err)
	}
	return decodeHourly(rec), nil
}

// Update implements compensation.HourlyRepository.
func (r *hourlyRepositoryImpl) Update(ctx context.Context, h compensation.Hourly) (compensation.Hourly, error) {
	rec, err := r.client.Update(ctx, resHourly, h.ID, encodeHourly(h))
	if err != nil {
		if restapi.IsNotFound(err) {
			return compensation.Hourly{}, compensation.ErrCompensationNotFound
		}
		return compensation.Hourly{}, fmt.Errorf("failed to update hourly employee: %w", err)
	}
	return decodeHourly(rec), nil
}

type salariedRepositoryImpl struct {
	client *restapi.Client
}

func NewSalariedRepository(client *restapi.Client) compensation.SalariedRepository {
	return &salariedRepositoryImpl{client: client}
}

func decodeSalaried(raw restapi.Record) compensation.Salaried {
	r := canonical(resSalaried, raw)
	return compensation.Salaried{
		ID:           r.Int("id"),
		EmployeeID:   r.Int("employeeId"),
		EmployeeName: r.String("employeeName"),
		StartDate:    r.Time("startDate"),
		EndDate:      r.Time("endDate"),
		SalaryAmount: r.FloatPtr("salaryAmount"),
		BonusAmount:  r.FloatPtr("bonusAmount"),
		DeductionID:  r.IntPtr("deductionId"),
	}
}

func encodeSalaried(s compensation.Salaried) map[string]any {
	return map[string]any{
		"employee":     s.EmployeeID,
		"employeename": s.EmployeeName,
		"startdate":    formatDate(s.StartDate),
		"enddate":      formatDate(s.EndDate),
		"salaryamount": optionalMoney(s.SalaryAmount),
		"bonusamount":  optionalMoney(s.BonusAmount),
		"deduction":    optionalID(s.DeductionID),
	}
}

// List implements compensation.SalariedRepository.
func (r *salariedRepositoryImpl) List(ctx context.Context) ([]compensation.Salaried, error) {
	records, err := r.client.List(ctx, resSalaried)
	if err != nil {
		return nil, fmt.Errorf("failed to list salaried employees: %w", err)
	}

	rows := make([]compensation.Salaried, 0, len(records))
	for _, rec := range records {
		rows = append(rows, decodeSalaried(rec))
	}
	return rows, nil
}

// Create implements compensation.SalariedRepository.
func (r *salariedRepositoryImpl) Create(ctx context.Context, s compensation.Salaried) (compensation.Salaried, error) {
	rec, err := r.client.Create(ctx, resSalaried, encodeSalaried(s))
	if err != nil {
		return compensation.Salaried{}, fmt.Errorf("failed to create salaried employee: %w", err)
	}
	return decodeSalaried(rec), nil
}

// Update implements compensation.SalariedRepository.
func (r *salariedRepositoryImpl) Update(ctx context.Context, s compensation.Salaried) (compensation.Salaried, error) {
	rec, err := r.client.Update(ctx, resSalaried, s.ID, encodeSalaried(s))
	if err != nil {
		if restapi.IsNotFound(err) {
			return compensation.Salaried{}, compensation.ErrCompensationNotFound
		}
		return compensation.Salaried{}, fmt.Errorf("failed to update salaried employee: %w", err)
	}
	return decodeSalaried(rec), nil
}

type deductionRepositoryImpl struct {
	client *restapi.Client
}

func NewDeductionRepository(client *restapi.Client) compensation.DeductionRepository {
	return &deductionRepositoryImpl{client: client}
}

func decodeDeduction(raw restapi.Record) compensation.Deduction {
	r := canonical(resDeductions, raw)
	return compensation.Deduction{
		ID:     r.Int("id"),
		Type:   r.String("type"),
		Amount: r.Float("amount"),
	}
}

func encodeDeduction(d compensation.Deduction) map[string]any {
	return map[string]any{
		"deductiontype":   d.Type,
		"deductionamount": money(d.Amount),
	}
}

// List implements compensation.DeductionRepository.
func (r *deductionRepositoryImpl) List(ctx context.Context) ([]compensation.Deduction, error) {
	records, err := r.client.List(ctx, resDeductions)
	if err != nil {
		return nil, fmt.Errorf("failed to list deductions: %w", err)
	}

	deductions := make([]compensation.Deduction, 0, len(records))
	for _, rec := range records {
		deductions = append(deductions, decodeDeduction(rec))
	}
	return deductions, nil
}

// Create implements compensation.DeductionRepository.
func (r *deductionRepositoryImpl) Create(ctx context.Context, d compensation.Deduction) (compensation.Deduction, error) {
	rec, err := r.client.Create(ctx, resDeductions, encodeDeduction(d))
	if err != nil {
		return compensation.Deduction{}, fmt.Errorf("failed to create deduction: %w", err)
	}
	return decodeDeduction(rec), nil
}

// Update implements compensation.DeductionRepository.
func (r *deductionRepositoryImpl) Update(ctx context.Context, d compensation.Deduction) (compensation.Deduction, error) {
	rec, err := r.client.Update(ctx, resDeductions, d.ID, encodeDeduction(d))
	if err != nil {
		if restapi.IsNotFound(err) {
			return compensation.Deduction{}, compensation.ErrDeductionNotFound
		}
		return compensation.Deduction{}, fmt.Errorf("failed to update deduction: %w", err)
	}
	return decodeDeduction(rec), nil
}

type payrollMonthRepositoryImpl struct {
	client *restapi.Client
}

func NewPayrollMonthRepository(client *restapi.Client) compensation.PayrollMonthRepository {
	return &payrollMonthRepositoryImpl{client: client}
}

func decodePayrollMonth(raw restapi.Record) compensation.PayrollMonth {
	r := canonical(resPayrollMonths, raw)
	return compensation.PayrollMonth{
		ID:     r.Int("id"),
		Period: r.String("period"),
	}
}

// List implements compensation.PayrollMonthRepository.
func (r *payrollMonthRepositoryImpl) List(ctx context.Context) ([]compensation.PayrollMonth, error) {
	records, err := r.client.List(ctx, resPayrollMonths)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll months: %w", err)
	}

	months := make([]compensation.PayrollMonth, 0, len(records))
	for _, rec := range records {
		months = append(months, decodePayrollMonth(rec))
	}
	return months, nil
}

// Create implements compensation.PayrollMonthRepository.
func (r *payrollMonthRepositoryImpl) Create(ctx context.Context, period string) (compensation.PayrollMonth, error) {
	rec, err := r.client.Create(ctx, resPayrollMonths, map[string]any{"payrollmonth": period})
	if err != nil {
		return compensation.PayrollMonth{}, fmt.Errorf("failed to create payroll month: %w", err)
	}
	return decodePayrollMonth(rec), nil
}
