package upstream

import (
	"context"
	"fmt"

	"github.com/aleclahey/payroll-backend-go/internal/domain/payroll"
	"github.com/aleclahey/payroll-backend-go/internal/pkg/restapi"
)

type paymentRepositoryImpl struct {
	client *restapi.Client
}

func NewPaymentRepository(client *restapi.Client) payroll.PaymentRepository {
	return &paymentRepositoryImpl{client: client}
}

// decodePayment leaves PayrollPeriod empty when the row has none, the
// service applies the configured default.
func decodePayment(raw restapi.Record) payroll.Payment {
	r := canonical(resPayments, raw)
	return payroll.Payment{
		ID:                 r.Int("id"),
		EmployeeID:         r.Int("employeeId"),
		PayrollMonthID:     r.IntPtr("payrollMonthId"),
		PayrollMonthName:   r.String("payrollMonthName"),
		DeductionID:        r.IntPtr("deductionId"),
		DeductionType:      r.String("deductionType"),
		HourlyEmployeeID:   r.IntPtr("hourlyEmployeeId"),
		SalariedEmployeeID: r.IntPtr("salariedEmployeeId"),
		OvertimePay:        r.FloatPtr("overtimePay"),
		PayrollPeriod:      payroll.PeriodKind(r.String("payrollPeriod")),
		Status:             r.String("status"),
	}
}

// List implements payroll.PaymentRepository.
func (r *paymentRepositoryImpl) List(ctx context.Context) ([]payroll.Payment, error) {
	records, err := r.client.List(ctx, resPayments)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	payments := make([]payroll.Payment, 0, len(records))
	for _, rec := range records {
		payments = append(payments, decodePayment(rec))
	}
	return payments, nil
}

// GetByID implements payroll.PaymentRepository.
func (r *paymentRepositoryImpl) GetByID(ctx context.Context, id int64) (payroll.Payment, error) {
	rec, err := r.client.Get(ctx, resPayments, id)
	if err != nil {
		if restapi.IsNotFound(err) {
			return payroll.Payment{}, payroll.ErrPaymentNotFound
		}
		return payroll.Payment{}, fmt.Errorf("failed to get payment: %w", err)
	}
	return decodePayment(rec), nil
}

// Create implements payroll.PaymentRepository.
func (r *paymentRepositoryImpl) Create(ctx context.Context, req payroll.CreatePaymentRequest) (payroll.Payment, error) {
	body := map[string]any{
		"employee":         req.EmployeeID,
		"payrollmonth":     optionalID(req.PayrollMonthID),
		"overtimepay":      optionalMoney(req.OvertimePay),
		"deductions":       optionalID(req.DeductionsID),
		"hourlyemployee":   optionalID(req.HourlyEmployeeID),
		"salariedemployee": optionalID(req.SalariedEmployeeID),
	}
	if req.PayrollPeriod != "" {
		body["payrollperiod"] = string(req.PayrollPeriod)
	}

	rec, err := r.client.Create(ctx, resPayments, body)
	if err != nil {
		return payroll.Payment{}, fmt.Errorf("failed to create payment: %w", err)
	}
	return decodePayment(rec), nil
}
