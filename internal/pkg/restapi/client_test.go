package restapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aleclahey/payroll-backend-go/internal/pkg/restapi/restapitest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*Client, *restapitest.Server) {
	t.Helper()
	srv := restapitest.NewServer(t)
	return NewClient(srv.BaseURL(), 5*time.Second, nil), srv
}

func TestClient_ListCreateUpdateDelete(t *testing.T) {
	ctx := context.Background()
	client, srv := newTestClient(t)

	srv.Seed("departments", map[string]any{"departmentname": "Finance"})

	list, err := client.List(ctx, "departments")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(1), list[0].Int("id"))
	assert.Equal(t, "Finance", list[0].String("departmentname"))

	created, err := client.Create(ctx, "departments", map[string]any{"departmentname": "Ops"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), created.Int("id"))

	updated, err := client.Update(ctx, "departments", 2, map[string]any{"departmentname": "Operations"})
	require.NoError(t, err)
	assert.Equal(t, "Operations", updated.String("departmentname"))

	require.NoError(t, client.Delete(ctx, "departments", 1))
	assert.Len(t, srv.Items("departments"), 1)
}

func TestClient_APIError(t *testing.T) {
	client, srv := newTestClient(t)
	srv.Fail(http.MethodPost, "payments", http.StatusBadRequest)

	_, err := client.Create(context.Background(), "payments", map[string]any{})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Bad Request", apiErr.Status)
	assert.Contains(t, apiErr.Error(), "API call failed: 400 Bad Request")
	assert.True(t, IsClientError(err))
	assert.False(t, IsNotFound(err))
}

func TestClient_GetMissingIsNotFound(t *testing.T) {
	client, _ := newTestClient(t)

	_, err := client.Get(context.Background(), "employees", 99)
	assert.True(t, IsNotFound(err))
}

func TestClient_NonJSONBodyIsText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("ok"))
	}))
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL, time.Second, nil)
	resp, err := client.Do(context.Background(), http.MethodGet, "/health/", nil)
	require.NoError(t, err)
	assert.False(t, resp.IsJSON())
	assert.Equal(t, "ok", resp.Text())
	assert.ErrorIs(t, resp.Decode(&map[string]any{}), ErrNotJSON)
}

func TestClient_ListUnwrapsPaginatedEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"count":   1,
			"results": []any{map[string]any{"id": 7, "payrollmonth": "2025-09"}},
		})
	}))
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL+"/", time.Second, nil)
	list, err := client.List(context.Background(), "payroll-months")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(7), list[0].Int("id"))
}

func TestClient_TimeoutSurfacesAsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL, 20*time.Millisecond, nil)
	_, err := client.List(context.Background(), "employees")
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestRecord_LenientAccessors(t *testing.T) {
	rec := Record{
		"id":              json.Number("12"),
		"deductionamount": "400.00",
		"hourlyrate":      json.Number("25.5"),
		"manageremployee": nil,
		"department":      map[string]any{"id": json.Number("3"), "departmentname": "HR"},
		"paid":            "true",
		"hiredate":        "2024-02-01",
		"clockin":         "2025-09-01T09:00:00Z",
		"bogus":           "n/a",
	}

	assert.Equal(t, int64(12), rec.Int("id"))
	assert.Equal(t, 400.0, rec.Float("deductionamount"))
	assert.Equal(t, 25.5, rec.Float("hourlyrate"))
	assert.Nil(t, rec.IntPtr("manageremployee"))
	assert.Equal(t, int64(3), rec.Int("department"))
	assert.Equal(t, "HR", rec.Record("department").String("departmentname"))
	assert.True(t, rec.Bool("paid"))
	require.NotNil(t, rec.Time("hiredate"))
	assert.Equal(t, 2024, rec.Time("hiredate").Year())
	require.NotNil(t, rec.Time("clockin"))
	assert.Equal(t, 9, rec.Time("clockin").Hour())
	assert.Nil(t, rec.FloatPtr("bogus"))
	assert.Nil(t, rec.Time("bogus"))
	assert.Equal(t, "", rec.String("missing"))
	assert.Equal(t, "12", rec.String("id"))
}
