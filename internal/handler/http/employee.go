package http

import (
	"encoding/json"
	"net/http"

	"github.com/aleclahey/payroll-backend-go/internal/domain/compensation"
	"github.com/aleclahey/payroll-backend-go/internal/domain/employee"
	"github.com/aleclahey/payroll-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	ListEmployees(w http.ResponseWriter, r *http.Request)
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
	DeleteEmployee(w http.ResponseWriter, r *http.Request)
	UpsertCompensation(w http.ResponseWriter, r *http.Request)
	ListPersonalDays(w http.ResponseWriter, r *http.Request)
	ListBankInformation(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService     employee.EmployeeService
	compensationService compensation.CompensationService
}

func NewEmployeeHandler(employeeService employee.EmployeeService, compensationService compensation.CompensationService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService:     employeeService,
		compensationService: compensationService,
	}
}

// ListEmployees implements EmployeeHandler
func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	results, err := h.employeeService.ListEmployees(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// CreateEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.EmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.employeeService.CreateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if result.Outcome == employee.OutcomeCompensationFailed {
		response.Accepted(w, "Employee created but compensation could not be saved", result)
		return
	}
	response.Created(w, "Employee created successfully", result)
}

// UpdateEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	var req employee.EmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.employeeService.UpdateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if result.Outcome == employee.OutcomeCompensationFailed {
		response.Accepted(w, "Employee updated but compensation could not be saved", result)
		return
	}
	response.SuccessWithMessage(w, "Employee updated successfully", result)
}

// DeleteEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	if err := h.employeeService.DeleteEmployee(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]string{"message": "Employee deleted successfully"})
}

type compensationRequest struct {
	Type   compensation.Kind `json:"type"`
	Amount float64           `json:"amount"`
}

// UpsertCompensation handles PUT /employees/{id}/compensation
func (h *employeeHandlerImpl) UpsertCompensation(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	var req compensationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.compensationService.UpsertForEmployee(r.Context(), id, req.Type, req.Amount)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	switch result.Status {
	case compensation.UpsertSucceeded:
		response.Success(w, compensation.NewUpsertResponse(result))
	case compensation.UpsertPartial:
		response.Accepted(w, "Compensation was only partly saved", compensation.NewUpsertResponse(result))
	default:
		response.HandleError(w, result.Err())
	}
}

// ListPersonalDays implements EmployeeHandler
func (h *employeeHandlerImpl) ListPersonalDays(w http.ResponseWriter, r *http.Request) {
	results, err := h.employeeService.ListPersonalDays(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// ListBankInformation implements EmployeeHandler
func (h *employeeHandlerImpl) ListBankInformation(w http.ResponseWriter, r *http.Request) {
	results, err := h.employeeService.ListBankInformation(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
