package cron

import (
	"context"
	"errors"
	"time"

	"github.com/aleclahey/payroll-backend-go/internal/domain/compensation"
)

var errNoPayrollMonth = errors.New("no payroll month could be found or created")

// PayrollMonthJobs keeps the payroll month of today present upstream so that
// compensation upserts find it without creating it on the request path
type PayrollMonthJobs struct {
	compensationService compensation.CompensationService
}

func NewPayrollMonthJobs(compensationService compensation.CompensationService) *PayrollMonthJobs {
	return &PayrollMonthJobs{compensationService: compensationService}
}

func (j *PayrollMonthJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("ensure_current_payroll_month", interval, j.EnsureCurrentPayrollMonth)
}

func (j *PayrollMonthJobs) EnsureCurrentPayrollMonth(ctx context.Context) error {
	id, err := j.compensationService.CurrentPayrollMonth(ctx)
	if err != nil {
		return err
	}
	if id == nil {
		return errNoPayrollMonth
	}
	return nil
}
