package timesheet

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/aleclahey/payroll-backend-go/internal/domain/timesheet"
	"github.com/aleclahey/payroll-backend-go/internal/pkg/restapi"
	"github.com/aleclahey/payroll-backend-go/internal/pkg/restapi/restapitest"
	"github.com/aleclahey/payroll-backend-go/internal/repository/upstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*TimesheetServiceImpl, *restapitest.Server) {
	t.Helper()
	srv := restapitest.NewServer(t)
	client := restapi.NewClient(srv.BaseURL(), 5*time.Second, nil)

	svc := NewTimesheetService(
		upstream.NewTimesheetRepository(client),
		upstream.NewHoursWorkedRepository(client),
		upstream.NewEmployeeRepository(client),
		upstream.NewDepartmentRepository(client),
	).(*TimesheetServiceImpl)
	svc.now = func() time.Time { return time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC) }
	return svc, srv
}

func seedPeople(srv *restapitest.Server) {
	srv.Seed("departments", map[string]any{"departmentname": "Operations"})
	srv.Seed("employees",
		map[string]any{"firstname": "Ada", "lastname": "Lovelace", "department": 1},
		map[string]any{"firstname": "Alan", "lastname": "Turing"},
	)
}

func TestListTimesheets_EnrichedView(t *testing.T) {
	svc, srv := newTestService(t)
	seedPeople(srv)
	srv.Seed("timesheets",
		map[string]any{"employee": 1, "clockin": "08:00:00", "clockout": "18:00:00"},
		map[string]any{"employee": 2, "employeename": "A. Turing", "clockin": "09:00:00", "clockout": "09:00:00"},
		map[string]any{"employee": 42, "clockin": "09:00:00", "clockout": "12:00:00"},
	)

	list, err := svc.ListTimesheets(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)

	first := list[0]
	assert.Equal(t, "Ada Lovelace", first.EmployeeName)
	assert.Equal(t, "Operations", first.Department)
	assert.Equal(t, 10.0, first.HoursWorked)
	assert.Equal(t, 10.0, first.TotalHours)
	assert.Equal(t, 2.0, first.OvertimeHours)
	assert.Equal(t, 30, first.BreakTime)
	assert.Equal(t, "2025-09-15", first.Date)
	assert.Equal(t, timesheet.StatusCompleted, first.Status)

	second := list[1]
	assert.Equal(t, "A. Turing", second.EmployeeName, "upstream name wins")
	assert.Equal(t, "", second.Department)
	assert.Equal(t, timesheet.StatusPending, second.Status)

	assert.Equal(t, "Unknown", list[2].EmployeeName)
}

func TestCreateTimesheet(t *testing.T) {
	svc, srv := newTestService(t)
	seedPeople(srv)

	resp, err := svc.CreateTimesheet(context.Background(), timesheet.TimesheetRequest{
		EmployeeID: 1,
		ClockIn:    "22:00",
		ClockOut:   "07:00",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, 9.0, resp.HoursWorked)
	assert.Equal(t, 1.0, resp.OvertimeHours)
	assert.Equal(t, "Ada Lovelace", resp.EmployeeName)

	_, err = svc.CreateTimesheet(context.Background(), timesheet.TimesheetRequest{EmployeeID: 1, ClockIn: "7am", ClockOut: "07:00"})
	assert.Error(t, err)
	assert.Len(t, srv.Items("timesheets"), 1)
}

func TestUpdateAndDeleteTimesheet(t *testing.T) {
	svc, srv := newTestService(t)
	seedPeople(srv)
	srv.Seed("timesheets", map[string]any{"employee": 1, "clockin": "09:00:00", "clockout": "17:00:00"})

	resp, err := svc.UpdateTimesheet(context.Background(), timesheet.TimesheetRequest{
		ID:         1,
		EmployeeID: 1,
		ClockIn:    "09:00",
		ClockOut:   "19:30",
	})
	require.NoError(t, err)
	assert.Equal(t, 10.5, resp.HoursWorked)

	require.NoError(t, svc.DeleteTimesheet(context.Background(), 1))
	assert.ErrorIs(t, svc.DeleteTimesheet(context.Background(), 1), timesheet.ErrTimesheetNotFound)
}

func TestListHoursWorked(t *testing.T) {
	t.Run("defaults without records", func(t *testing.T) {
		svc, srv := newTestService(t)
		seedPeople(srv)

		list, err := svc.ListHoursWorked(context.Background())
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, 40.0, list[0].WeeklyHours)
		assert.Equal(t, 0.0, list[0].OvertimeHours)
		assert.Equal(t, "Operations", list[0].Department)
		assert.Equal(t, "Alan Turing", list[1].EmployeeName)
	})

	t.Run("lowest payroll month wins", func(t *testing.T) {
		svc, srv := newTestService(t)
		seedPeople(srv)
		srv.Seed("hours-worked",
			map[string]any{"payrollmonth": 3, "hoursworked": 35, "overtimehours": 1},
			map[string]any{"payrollmonth": 2, "hoursworked": 38, "overtimehours": 2},
			map[string]any{"payrollmonth": 2, "hoursworked": 50, "overtimehours": 10},
		)

		list, err := svc.ListHoursWorked(context.Background())
		require.NoError(t, err)
		for _, row := range list {
			assert.Equal(t, 38.0, row.WeeklyHours)
			assert.Equal(t, 2.0, row.OvertimeHours)
		}
	})

	t.Run("fetch failure", func(t *testing.T) {
		svc, srv := newTestService(t)
		srv.Fail(http.MethodGet, "hours-worked", http.StatusServiceUnavailable)

		_, err := svc.ListHoursWorked(context.Background())
		assert.Error(t, err)
	})
}

func TestFirstSummary(t *testing.T) {
	id := func(v int64) *int64 { return &v }
	hours := func(v float64) *float64 { return &v }

	_, ok := firstSummary(nil)
	assert.False(t, ok)

	got, ok := firstSummary([]timesheet.HoursWorked{
		{ID: 1, HoursWorked: hours(10)},
		{ID: 2, PayrollMonthID: id(5), HoursWorked: hours(20)},
	})
	require.True(t, ok)
	assert.Equal(t, int64(2), got.ID)
}
