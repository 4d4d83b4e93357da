package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aleclahey/payroll-backend-go/internal/domain/compensation"
	"github.com/aleclahey/payroll-backend-go/internal/domain/payroll"
	"github.com/aleclahey/payroll-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	// Payments
	ListPayments(w http.ResponseWriter, r *http.Request)
	GetPayment(w http.ResponseWriter, r *http.Request)
	CreatePayment(w http.ResponseWriter, r *http.Request)
	ExportPaymentsCSV(w http.ResponseWriter, r *http.Request)
	DownloadPayslip(w http.ResponseWriter, r *http.Request)

	// Deductions and payroll months
	ListDeductions(w http.ResponseWriter, r *http.Request)
	ListPayrollMonths(w http.ResponseWriter, r *http.Request)
	GetPayrollMonthSummary(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService      payroll.PayrollService
	compensationService compensation.CompensationService
}

func NewPayrollHandler(payrollService payroll.PayrollService, compensationService compensation.CompensationService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService:      payrollService,
		compensationService: compensationService,
	}
}

// ========== PAYMENTS ==========

func (h *payrollHandlerImpl) ListPayments(w http.ResponseWriter, r *http.Request) {
	results, err := h.payrollService.ListPayments(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *payrollHandlerImpl) GetPayment(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	result, err := h.payrollService.GetPayment(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.CreatePayment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payment created successfully", result)
}

// ExportPaymentsCSV handles GET /payments/export.csv
func (h *payrollHandlerImpl) ExportPaymentsCSV(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.payrollService.ExportPaymentsCSV(r.Context(), &buf); err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="payments.csv"`)
	_, _ = buf.WriteTo(w)
}

// DownloadPayslip handles GET /payments/{id}/payslip
func (h *payrollHandlerImpl) DownloadPayslip(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.payrollService.WritePayslip(r.Context(), id, &buf); err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="payslip-%d.pdf"`, id))
	_, _ = buf.WriteTo(w)
}

// ========== DEDUCTIONS & PAYROLL MONTHS ==========

func (h *payrollHandlerImpl) ListDeductions(w http.ResponseWriter, r *http.Request) {
	results, err := h.compensationService.ListDeductions(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *payrollHandlerImpl) ListPayrollMonths(w http.ResponseWriter, r *http.Request) {
	results, err := h.compensationService.ListPayrollMonths(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *payrollHandlerImpl) GetPayrollMonthSummary(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	result, err := h.payrollService.GetPayrollMonthSummary(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
