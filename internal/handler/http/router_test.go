package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aleclahey/payroll-backend-go/internal/app"
	"github.com/aleclahey/payroll-backend-go/internal/config"
	"github.com/aleclahey/payroll-backend-go/internal/pkg/restapi/restapitest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (http.Handler, *restapitest.Server) {
	t.Helper()
	srv := restapitest.NewServer(t)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	cfg := &config.Config{
		App:      config.AppConfig{FrontendURL: "http://localhost:3000"},
		Upstream: config.UpstreamConfig{BaseURL: srv.BaseURL(), Timeout: 5 * time.Second},
		Payroll:  config.PayrollConfig{DefaultPeriod: "monthly", Currency: "USD"},
	}
	services := app.NewServices(cfg, logger)

	router := NewRouter(
		cfg.App,
		logger,
		NewEmployeeHandler(services.Employee, services.Compensation),
		NewMasterHandler(services.Master),
		NewTimesheetHandler(services.Timesheet),
		NewBenefitHandler(services.Benefit),
		NewPayrollHandler(services.Payroll, services.Compensation),
		NewDashboardHandler(services.Dashboard),
	)
	return router, srv
}

func seedPayments(srv *restapitest.Server) {
	srv.Seed("employees", map[string]any{"firstname": "Ada", "lastname": "Lovelace", "gender": "F", "hiredate": "2024-01-15"})
	srv.Seed("deductions", map[string]any{"deductiontype": "Standard Hourly", "deductionamount": "40.00"})
	srv.Seed("hourly-employees", map[string]any{"employee": 1, "hourlyrate": 20, "deduction": 1})
	srv.Seed("timesheets",
		map[string]any{"employee": 1, "clockin": "08:00:00", "clockout": "18:00:00"},
		map[string]any{"employee": 1, "clockin": "09:00:00", "clockout": "15:00:00"},
	)
	srv.Seed("payments", map[string]any{"employee": 1, "deductions": 1})
}

func doRequest(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func TestRouter_Heartbeat(t *testing.T) {
	h, _ := newTestRouter(t)

	w := doRequest(t, h, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_ListPayments(t *testing.T) {
	h, srv := newTestRouter(t)
	seedPayments(srv)

	w := doRequest(t, h, http.MethodGet, "/api/v1/payments", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeEnvelope(t, w)
	assert.True(t, resp["success"].(bool))
	data := resp["data"].([]any)
	require.Len(t, data, 1)
	payment := data[0].(map[string]any)
	assert.Equal(t, "Ada Lovelace", payment["employeeName"])
	assert.Equal(t, 340.0, payment["grossPay"])
	assert.Equal(t, 300.0, payment["netPay"])
	assert.Equal(t, "Unknown Period", payment["payPeriod"])
}

func TestRouter_PaymentErrors(t *testing.T) {
	h, srv := newTestRouter(t)
	seedPayments(srv)

	w := doRequest(t, h, http.MethodGet, "/api/v1/payments/9", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, h, http.MethodGet, "/api/v1/payments/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, h, http.MethodGet, "/api/v1/payroll-months/9/summary", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, h, http.MethodPost, "/api/v1/payments", "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, h, http.MethodPost, "/api/v1/payments", map[string]any{})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestRouter_Exports(t *testing.T) {
	h, srv := newTestRouter(t)
	seedPayments(srv)

	w := doRequest(t, h, http.MethodGet, "/api/v1/payments/export.csv", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "employee_name")

	w = doRequest(t, h, http.MethodGet, "/api/v1/payments/1/payslip", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))
}

func TestRouter_CreateEmployee(t *testing.T) {
	h, srv := newTestRouter(t)

	w := doRequest(t, h, http.MethodPost, "/api/v1/employees", map[string]any{
		"firstName":  "Alan",
		"lastName":   "Turing",
		"gender":     "M",
		"hireDate":   "2025-02-01",
		"type":       "hourly",
		"hourlyRate": 25,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	resp := decodeEnvelope(t, w)
	data := resp["data"].(map[string]any)
	assert.Equal(t, "saved", data["outcome"])
	assert.Len(t, srv.Items("hourly-employees"), 1)
}

func TestRouter_CreateEmployee_CompensationFailed(t *testing.T) {
	h, srv := newTestRouter(t)
	srv.Fail(http.MethodPost, "hourly-employees", http.StatusInternalServerError)

	w := doRequest(t, h, http.MethodPost, "/api/v1/employees", map[string]any{
		"firstName":  "Alan",
		"lastName":   "Turing",
		"gender":     "M",
		"type":       "hourly",
		"hourlyRate": 25,
	})
	require.Equal(t, http.StatusAccepted, w.Code)

	data := decodeEnvelope(t, w)["data"].(map[string]any)
	assert.Equal(t, "employee_saved_compensation_failed", data["outcome"])
	assert.NotEmpty(t, data["warnings"])
	assert.Len(t, srv.Items("employees"), 1)
}

func TestRouter_CreateEmployee_Invalid(t *testing.T) {
	h, srv := newTestRouter(t)

	w := doRequest(t, h, http.MethodPost, "/api/v1/employees", map[string]any{"gender": "Q"})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	resp := decodeEnvelope(t, w)
	details := resp["error"].(map[string]any)["details"].(map[string]any)
	assert.Contains(t, details, "firstName")
	assert.Contains(t, details, "gender")
	assert.Zero(t, srv.Calls(http.MethodPost, "employees"))
}

func TestRouter_UpsertCompensation(t *testing.T) {
	h, srv := newTestRouter(t)
	srv.Seed("employees", map[string]any{"firstname": "Grace", "lastname": "Hopper", "hiredate": "2020-03-01"})

	w := doRequest(t, h, http.MethodPut, "/api/v1/employees/1/compensation", map[string]any{
		"type":   "salaried",
		"amount": 60000,
	})
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeEnvelope(t, w)["data"].(map[string]any)
	assert.Equal(t, "succeeded", data["status"])
	assert.Equal(t, true, data["created"])

	w = doRequest(t, h, http.MethodPut, "/api/v1/employees/7/compensation", map[string]any{
		"type":   "salaried",
		"amount": 60000,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_UpstreamFailures(t *testing.T) {
	h, srv := newTestRouter(t)
	srv.Fail(http.MethodGet, "employees", http.StatusInternalServerError)
	srv.Fail(http.MethodPost, "departments", http.StatusBadRequest)

	w := doRequest(t, h, http.MethodGet, "/api/v1/employees", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)

	w = doRequest(t, h, http.MethodGet, "/api/v1/dashboard", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)

	w = doRequest(t, h, http.MethodPost, "/api/v1/departments", map[string]any{"name": "Ops"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_Dashboard(t *testing.T) {
	h, srv := newTestRouter(t)
	seedPayments(srv)

	w := doRequest(t, h, http.MethodGet, "/api/v1/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeEnvelope(t, w)["data"].(map[string]any)
	assert.Equal(t, 1.0, data["totalEmployees"])
	assert.Equal(t, 300.0, data["totalPayroll"])
	assert.Equal(t, 40.0, data["totalHoursThisWeek"])
}

func TestRouter_BenefitPlans(t *testing.T) {
	h, _ := newTestRouter(t)

	w := doRequest(t, h, http.MethodGet, "/api/v1/benefit-plans", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeEnvelope(t, w)["data"].([]any), 3)
}

func TestRouter_Metrics(t *testing.T) {
	h, srv := newTestRouter(t)
	seedPayments(srv)
	doRequest(t, h, http.MethodGet, "/api/v1/payments", nil)

	w := doRequest(t, h, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "payroll_upstream_requests_total")
}
