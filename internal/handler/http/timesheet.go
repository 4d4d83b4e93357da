package http

import (
	"encoding/json"
	"net/http"

	"github.com/aleclahey/payroll-backend-go/internal/domain/timesheet"
	"github.com/aleclahey/payroll-backend-go/internal/handler/http/response"
)

type TimesheetHandler interface {
	ListTimesheets(w http.ResponseWriter, r *http.Request)
	CreateTimesheet(w http.ResponseWriter, r *http.Request)
	UpdateTimesheet(w http.ResponseWriter, r *http.Request)
	DeleteTimesheet(w http.ResponseWriter, r *http.Request)
	ListHoursWorked(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &timesheetHandlerImpl{timesheetService: timesheetService}
}

// ListTimesheets handles GET /timesheets
func (h *timesheetHandlerImpl) ListTimesheets(w http.ResponseWriter, r *http.Request) {
	results, err := h.timesheetService.ListTimesheets(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// CreateTimesheet handles POST /timesheets
func (h *timesheetHandlerImpl) CreateTimesheet(w http.ResponseWriter, r *http.Request) {
	var req timesheet.TimesheetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.timesheetService.CreateTimesheet(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Timesheet created successfully", result)
}

// UpdateTimesheet handles PUT /timesheets/{id}
func (h *timesheetHandlerImpl) UpdateTimesheet(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	var req timesheet.TimesheetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.timesheetService.UpdateTimesheet(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timesheet updated successfully", result)
}

// DeleteTimesheet handles DELETE /timesheets/{id}
func (h *timesheetHandlerImpl) DeleteTimesheet(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	if err := h.timesheetService.DeleteTimesheet(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]string{"message": "Timesheet deleted successfully"})
}

// ListHoursWorked handles GET /hours-worked
func (h *timesheetHandlerImpl) ListHoursWorked(w http.ResponseWriter, r *http.Request) {
	results, err := h.timesheetService.ListHoursWorked(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
