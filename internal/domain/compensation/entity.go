package compensation

import (
	"strings"
	"time"
)

// Kind classifies how an employee is paid
type Kind string

const (
	KindHourly   Kind = "hourly"
	KindSalaried Kind = "salaried"
)

func (k Kind) Valid() bool {
	return k == KindHourly || k == KindSalaried
}

// Hourly mirrors a row of the hourly-employees collection
type Hourly struct {
	ID             int64
	EmployeeID     int64
	EmployeeName   string
	PayrollMonthID *int64
	StartDate      *time.Time
	EndDate        *time.Time
	HourlyRate     *float64
	DeductionID    *int64
}

// Salaried mirrors a row of the salaried-employees collection
type Salaried struct {
	ID           int64
	EmployeeID   int64
	EmployeeName string
	StartDate    *time.Time
	EndDate      *time.Time
	SalaryAmount *float64
	BonusAmount  *float64
	DeductionID  *int64
}

// Record is the resolved compensation of one employee, tagged by Kind.
// Only the fields of its kind are meaningful.
type Record struct {
	Kind           Kind
	ID             int64
	EmployeeID     int64
	HourlyRate     *float64
	SalaryAmount   *float64
	BonusAmount    *float64
	StartDate      *time.Time
	EndDate        *time.Time
	DeductionID    *int64
	PayrollMonthID *int64
}

func (h Hourly) Record() Record {
	return Record{
		Kind:           KindHourly,
		ID:             h.ID,
		EmployeeID:     h.EmployeeID,
		HourlyRate:     h.HourlyRate,
		StartDate:      h.StartDate,
		EndDate:        h.EndDate,
		DeductionID:    h.DeductionID,
		PayrollMonthID: h.PayrollMonthID,
	}
}

func (s Salaried) Record() Record {
	return Record{
		Kind:         KindSalaried,
		ID:           s.ID,
		EmployeeID:   s.EmployeeID,
		SalaryAmount: s.SalaryAmount,
		BonusAmount:  s.BonusAmount,
		StartDate:    s.StartDate,
		EndDate:      s.EndDate,
		DeductionID:  s.DeductionID,
	}
}

// Active reports whether the record has no end date or ends on a later day
// than now. Upstream dates carry no zone, so days are compared as dates.
func (r Record) Active(now time.Time) bool {
	return r.EndDate == nil || r.EndDate.Format(time.DateOnly) > now.Format(time.DateOnly)
}

// Deduction is owned by the compensation record that references it
type Deduction struct {
	ID     int64
	Type   string
	Amount float64
}

// PayrollMonth is keyed by a YYYY-MM period
type PayrollMonth struct {
	ID     int64
	Period string
}

func (m PayrollMonth) Label() string {
	return FormatPeriod(m.Period)
}

const periodLayout = "2006-01"

// PeriodKey returns the YYYY-MM key of t
func PeriodKey(t time.Time) string {
	return t.Format(periodLayout)
}

// FormatPeriod turns "2025-09" into "September 2025".
// Values without a dash are taken as already formatted.
func FormatPeriod(period string) string {
	if !strings.Contains(period, "-") {
		return period
	}
	t, err := time.Parse(periodLayout, strings.TrimSpace(period))
	if err != nil {
		return period
	}
	return t.Format("January 2006")
}
