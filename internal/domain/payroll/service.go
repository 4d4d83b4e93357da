package payroll

import (
	"context"
	"io"
)

type PayrollService interface {
	// ListPayments derives every payment view. Payments of employees that
	// cannot be found are left out without an error.
	ListPayments(ctx context.Context) ([]PaymentResponse, error)
	GetPayment(ctx context.Context, id int64) (PaymentResponse, error)
	CreatePayment(ctx context.Context, req CreatePaymentRequest) (PaymentResponse, error)
	GetPayrollMonthSummary(ctx context.Context, payrollMonthID int64) (PayrollMonthSummary, error)

	ExportPaymentsCSV(ctx context.Context, w io.Writer) error
	WritePayslip(ctx context.Context, id int64, w io.Writer) error
}
