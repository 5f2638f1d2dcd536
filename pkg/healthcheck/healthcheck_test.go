package healthcheck

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticChecker(status Status, message string) *CustomChecker {
	return NewCustomChecker("static", func(ctx context.Context) (Status, string, interface{}) {
		return status, message, nil
	})
}

func TestCheck_NoCheckersIsHealthy(t *testing.T) {
	hc := New("test-service", "1.0.0")

	response := hc.Check(context.Background())

	assert.Equal(t, StatusHealthy, response.Status)
	assert.Equal(t, "test-service", response.Service)
	assert.Equal(t, "1.0.0", response.Version)
	assert.Empty(t, response.Checks)
}

func TestCheck_AggregatesWorstStatus(t *testing.T) {
	tests := []struct {
		name     string
		statuses []Status
		want     Status
	}{
		{"all healthy", []Status{StatusHealthy, StatusHealthy}, StatusHealthy},
		{"one degraded", []Status{StatusHealthy, StatusDegraded}, StatusDegraded},
		{"one unhealthy", []Status{StatusDegraded, StatusUnhealthy}, StatusUnhealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hc := New("test-service", "1.0.0")
			hc.SetCacheTTL(0)
			for i, status := range tt.statuses {
				hc.Register(string(rune('a'+i)), staticChecker(status, ""))
			}

			response := hc.Check(context.Background())

			assert.Equal(t, tt.want, response.Status)
			assert.Len(t, response.Checks, len(tt.statuses))
		})
	}
}

func TestCheck_CachesWithinTTL(t *testing.T) {
	calls := 0
	hc := New("test-service", "1.0.0")
	hc.Register("counting", NewCustomChecker("counting", func(ctx context.Context) (Status, string, interface{}) {
		calls++
		return StatusHealthy, "", nil
	}))

	hc.Check(context.Background())
	hc.Check(context.Background())

	assert.Equal(t, 1, calls)
}

func TestHandler_UnhealthyReturns503(t *testing.T) {
	hc := New("test-service", "1.0.0")
	hc.Register("broken", staticChecker(StatusUnhealthy, "store unreachable"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	hc.Handler()(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var response Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, StatusUnhealthy, response.Status)
	require.Len(t, response.Checks, 1)
	assert.Equal(t, "store unreachable", response.Checks[0].Message)
}

func TestHandler_DegradedStillReturns200(t *testing.T) {
	hc := New("test-service", "1.0.0")
	hc.Register("slow", staticChecker(StatusDegraded, "credential missing"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	hc.Handler()(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReadinessHandler_NotReadyWhileDegraded(t *testing.T) {
	hc := New("test-service", "1.0.0")
	hc.Register("warming", staticChecker(StatusDegraded, ""))

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()
	hc.ReadinessHandler()(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "not_ready")
}

func TestLivenessHandler_AlwaysAlive(t *testing.T) {
	hc := New("test-service", "1.0.0")
	hc.Register("broken", staticChecker(StatusUnhealthy, ""))

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	rec := httptest.NewRecorder()
	hc.LivenessHandler()(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "alive")
}

func TestResponseJSON_DurationsInMilliseconds(t *testing.T) {
	response := Response{
		Status:        StatusHealthy,
		Service:       "test-service",
		Version:       "1.0.0",
		Timestamp:     time.Now(),
		TotalDuration: 1500 * time.Millisecond,
		Checks: []Check{
			{Name: "store", Status: StatusHealthy, Duration: 250 * time.Millisecond, LastChecked: time.Now()},
		},
	}

	data, err := json.Marshal(response)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, float64(1500), decoded["total_duration_ms"])

	checks := decoded["checks"].([]interface{})
	check := checks[0].(map[string]interface{})
	assert.Equal(t, float64(250), check["duration_ms"])
}
