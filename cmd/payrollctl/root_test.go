package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/aleclahey/payroll-backend-go/internal/app"
	"github.com/aleclahey/payroll-backend-go/internal/config"
	"github.com/aleclahey/payroll-backend-go/internal/pkg/restapi/restapitest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCLI(t *testing.T) (*cli, *restapitest.Server) {
	t.Helper()
	srv := restapitest.NewServer(t)
	cfg := &config.Config{
		Upstream: config.UpstreamConfig{BaseURL: srv.BaseURL(), Timeout: 5 * time.Second},
		Payroll:  config.PayrollConfig{DefaultPeriod: "monthly", Currency: "USD"},
	}
	return &cli{cfg: cfg, services: app.NewServices(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))}, srv
}

func run(t *testing.T, c *cli, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(c)
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func seed(srv *restapitest.Server) {
	srv.Seed("employees", map[string]any{"firstname": "Grace", "lastname": "Hopper", "hiredate": "2020-03-01"})
	srv.Seed("salaried-employees", map[string]any{"employee": 1, "salaryamount": "60000.00"})
	srv.Seed("payments", map[string]any{"employee": 1})
}

func TestPaymentsCmd_Table(t *testing.T) {
	c, srv := newTestCLI(t)
	seed(srv)

	out, err := run(t, c, "payments")
	require.NoError(t, err)
	assert.Contains(t, out, "EMPLOYEE")
	assert.Contains(t, out, "Grace Hopper")
	assert.Contains(t, out, "$5,000.00")
}

func TestPaymentsCmd_JSONAndCSV(t *testing.T) {
	c, srv := newTestCLI(t)
	seed(srv)

	out, err := run(t, c, "payments", "--format", "json")
	require.NoError(t, err)
	var payments []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &payments))
	require.Len(t, payments, 1)
	assert.Equal(t, 5000.0, payments[0]["grossPay"])

	out, err = run(t, c, "payments", "--format", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "employee_name")

	_, err = run(t, c, "payments", "--format", "xml")
	assert.Error(t, err)
}

func TestEmployeesCmd(t *testing.T) {
	c, srv := newTestCLI(t)
	seed(srv)

	out, err := run(t, c, "employees")
	require.NoError(t, err)
	assert.Contains(t, out, "Grace Hopper")
	assert.Contains(t, out, "$60,000.00/yr")
}

func TestDashboardCmd(t *testing.T) {
	c, srv := newTestCLI(t)
	seed(srv)

	out, err := run(t, c, "dashboard", "--json")
	require.NoError(t, err)
	var d map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	assert.Equal(t, 5000.0, d["totalPayroll"])
}

func TestCompensationUpsertCmd(t *testing.T) {
	c, srv := newTestCLI(t)
	srv.Seed("employees", map[string]any{"firstname": "Alan", "lastname": "Turing"})

	out, err := run(t, c, "compensation", "upsert", "--employee", "1", "--kind", "hourly", "--amount", "25")
	require.NoError(t, err)
	assert.Contains(t, out, `"status": "succeeded"`)
	assert.Len(t, srv.Items("hourly-employees"), 1)

	_, err = run(t, c, "compensation", "upsert", "--employee", "1")
	assert.Error(t, err)
}
