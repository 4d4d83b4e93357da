package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOvertimeIsPerEntry(t *testing.T) {
	assert.Equal(t, 2.0, Overtime(10))
	assert.Equal(t, 0.0, Overtime(8))
	assert.Equal(t, 0.0, Overtime(6))

	week := []float64{7.5, 7.5, 7.5, 7.5, 7.5, 7.5}
	var total float64
	for _, h := range week {
		total += Overtime(h)
	}
	assert.Equal(t, 0.0, total, "45 hours in short shifts carry no overtime")
}

func TestHoursBetween(t *testing.T) {
	cases := []struct {
		in, out string
		want    float64
	}{
		{"09:00:00", "17:30:00", 8.5},
		{"09:00", "17:00", 8},
		{"22:00", "06:00", 8},
		{"08:10", "08:30", 0.33},
	}
	for _, c := range cases {
		got, ok := HoursBetween(c.in, c.out)
		require.True(t, ok, "%s-%s", c.in, c.out)
		assert.Equal(t, c.want, got, "%s-%s", c.in, c.out)
	}

	_, ok := HoursBetween("", "17:00")
	assert.False(t, ok)
}

func TestStatusForAndFilter(t *testing.T) {
	assert.Equal(t, StatusCompleted, StatusFor(4))
	assert.Equal(t, StatusPending, StatusFor(0))

	sheets := []Timesheet{{ID: 1, EmployeeID: 1}, {ID: 2, EmployeeID: 2}, {ID: 3, EmployeeID: 1}}
	got := ForEmployee(1, sheets)
	require.Len(t, got, 2)
	assert.Equal(t, int64(3), got[1].ID)
}

func TestTimesheetRequestValidate(t *testing.T) {
	req := TimesheetRequest{EmployeeID: 1, ClockIn: "09:00", ClockOut: "5pm"}
	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clockOut")

	req = TimesheetRequest{ClockIn: "09:00", ClockOut: "17:00"}
	assert.Error(t, req.Validate())

	req = TimesheetRequest{EmployeeID: 1, ClockIn: "09:00", ClockOut: "17:00:00"}
	assert.NoError(t, req.Validate())
}
