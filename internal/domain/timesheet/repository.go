package timesheet

import "context"

type TimesheetRepository interface {
	List(ctx context.Context) ([]Timesheet, error)
	Create(ctx context.Context, req TimesheetRequest) (Timesheet, error)
	Update(ctx context.Context, req TimesheetRequest) (Timesheet, error)
	Delete(ctx context.Context, id int64) error
}

type HoursWorkedRepository interface {
	List(ctx context.Context) ([]HoursWorked, error)
}
