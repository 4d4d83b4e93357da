package timesheet

import (
	"math"
	"time"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
)

// OvertimeThreshold is applied to each entry on its own, never to a week or period
const OvertimeThreshold = 8.0

// DefaultBreakMinutes is reported on every timesheet view
const DefaultBreakMinutes = 30

type Timesheet struct {
	ID            int64
	EmployeeID    int64
	EmployeeName  string
	ClockIn       string
	ClockOut      string
	HoursWorked   float64
	OvertimeHours float64
	Status        Status
}

// Overtime returns the hours of a single entry above the threshold
func Overtime(hours float64) float64 {
	if hours > OvertimeThreshold {
		return hours - OvertimeThreshold
	}
	return 0
}

// HoursBetween measures a shift from clock-in to clock-out. A clock-out
// earlier than the clock-in rolls over to the next day.
func HoursBetween(clockIn, clockOut string) (float64, bool) {
	in, ok := parseClock(clockIn)
	if !ok {
		return 0, false
	}
	out, ok := parseClock(clockOut)
	if !ok {
		return 0, false
	}
	if out.Before(in) {
		out = out.Add(24 * time.Hour)
	}
	hours := out.Sub(in).Hours()
	return math.Round(hours*100) / 100, true
}

// StatusFor is used when the upstream row carries no status of its own
func StatusFor(hours float64) Status {
	if hours > 0 {
		return StatusCompleted
	}
	return StatusPending
}

// ForEmployee keeps the entries of one employee
func ForEmployee(employeeID int64, timesheets []Timesheet) []Timesheet {
	var out []Timesheet
	for _, ts := range timesheets {
		if ts.EmployeeID == employeeID {
			out = append(out, ts)
		}
	}
	return out
}

func parseClock(s string) (time.Time, bool) {
	for _, layout := range []string{"15:04:05.999999", "15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
