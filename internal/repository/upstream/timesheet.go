package upstream

import (
	"context"
	"fmt"

	"github.com/aleclahey/payroll-backend-go/internal/domain/timesheet"
	"github.com/aleclahey/payroll-backend-go/internal/pkg/restapi"
)

type timesheetRepositoryImpl struct {
	client *restapi.Client
}

func NewTimesheetRepository(client *restapi.Client) timesheet.TimesheetRepository {
	return &timesheetRepositoryImpl{client: client}
}

// decodeTimesheet fills in what the upstream row may lack: hours come from the
// clock times, overtime from the per-entry threshold and status from the hours.
func decodeTimesheet(raw restapi.Record) timesheet.Timesheet {
	r := canonical(resTimesheets, raw)
	ts := timesheet.Timesheet{
		ID:           r.Int("id"),
		EmployeeID:   r.Int("employeeId"),
		EmployeeName: r.String("employeeName"),
		ClockIn:      r.String("clockIn"),
		ClockOut:     r.String("clockOut"),
		Status:       timesheet.Status(r.String("status")),
	}

	if r.Has("hoursWorked") {
		ts.HoursWorked = r.Float("hoursWorked")
	} else if hours, ok := timesheet.HoursBetween(ts.ClockIn, ts.ClockOut); ok {
		ts.HoursWorked = hours
	}

	if r.Has("overtimeHours") {
		ts.OvertimeHours = r.Float("overtimeHours")
	} else {
		ts.OvertimeHours = timesheet.Overtime(ts.HoursWorked)
	}

	if ts.Status == "" {
		ts.Status = timesheet.StatusFor(ts.HoursWorked)
	}
	return ts
}

func encodeTimesheet(req timesheet.TimesheetRequest) map[string]any {
	return map[string]any{
		"employee": req.EmployeeID,
		"clockin":  req.ClockIn,
		"clockout": req.ClockOut,
	}
}

// List implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) List(ctx context.Context) ([]timesheet.Timesheet, error) {
	records, err := r.client.List(ctx, resTimesheets)
	if err != nil {
		return nil, fmt.Errorf("failed to list timesheets: %w", err)
	}

	timesheets := make([]timesheet.Timesheet, 0, len(records))
	for _, rec := range records {
		timesheets = append(timesheets, decodeTimesheet(rec))
	}
	return timesheets, nil
}

// Create implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) Create(ctx context.Context, req timesheet.TimesheetRequest) (timesheet.Timesheet, error) {
	rec, err := r.client.Create(ctx, resTimesheets, encodeTimesheet(req))
	if err != nil {
		return timesheet.Timesheet{}, fmt.Errorf("failed to create timesheet: %w", err)
	}
	return decodeTimesheet(rec), nil
}

// Update implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) Update(ctx context.Context, req timesheet.TimesheetRequest) (timesheet.Timesheet, error) {
	rec, err := r.client.Update(ctx, resTimesheets, req.ID, encodeTimesheet(req))
	if err != nil {
		if restapi.IsNotFound(err) {
			return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
		}
		return timesheet.Timesheet{}, fmt.Errorf("failed to update timesheet: %w", err)
	}
	return decodeTimesheet(rec), nil
}

// Delete implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) Delete(ctx context.Context, id int64) error {
	if err := r.client.Delete(ctx, resTimesheets, id); err != nil {
		if restapi.IsNotFound(err) {
			return timesheet.ErrTimesheetNotFound
		}
		return fmt.Errorf("failed to delete timesheet: %w", err)
	}
	return nil
}

type hoursWorkedRepositoryImpl struct {
	client *restapi.Client
}

func NewHoursWorkedRepository(client *restapi.Client) timesheet.HoursWorkedRepository {
	return &hoursWorkedRepositoryImpl{client: client}
}

// List implements timesheet.HoursWorkedRepository.
func (r *hoursWorkedRepositoryImpl) List(ctx context.Context) ([]timesheet.HoursWorked, error) {
	records, err := r.client.List(ctx, resHoursWorked)
	if err != nil {
		return nil, fmt.Errorf("failed to list hours worked: %w", err)
	}

	rows := make([]timesheet.HoursWorked, 0, len(records))
	for _, raw := range records {
		rec := canonical(resHoursWorked, raw)
		rows = append(rows, timesheet.HoursWorked{
			ID:             rec.Int("id"),
			PayrollMonthID: rec.IntPtr("payrollMonthId"),
			DaysWorked:     rec.IntPtr("daysWorked"),
			HoursWorked:    rec.FloatPtr("hoursWorked"),
			OvertimeHours:  rec.FloatPtr("overtimeHours"),
		})
	}
	return rows, nil
}
