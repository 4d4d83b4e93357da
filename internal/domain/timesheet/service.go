package timesheet

import "context"

type TimesheetService interface {
	ListTimesheets(ctx context.Context) ([]TimesheetResponse, error)
	CreateTimesheet(ctx context.Context, req TimesheetRequest) (TimesheetResponse, error)
	UpdateTimesheet(ctx context.Context, req TimesheetRequest) (TimesheetResponse, error)
	DeleteTimesheet(ctx context.Context, id int64) error

	// ListHoursWorked reports weekly hours per employee
	ListHoursWorked(ctx context.Context) ([]HoursWorkedResponse, error)
}
