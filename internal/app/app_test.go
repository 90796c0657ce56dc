package app

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"staff-match/internal/config"
	"staff-match/internal/ws"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestListenAddr(t *testing.T) {
	addr, err := ListenAddr(" 8080 ")
	require.NoError(t, err)
	assert.Equal(t, ":8080", addr)

	addr, err = ListenAddr(":9000")
	require.NoError(t, err)
	assert.Equal(t, ":9000", addr)

	_, err = ListenAddr("")
	assert.Error(t, err)
}

func TestSyncGuard(t *testing.T) {
	assert.Nil(t, syncGuard(config.AuthConfig{}, "staff-match"))
	assert.NotNil(t, syncGuard(config.AuthConfig{JWTSecret: "s", Role: "service_role"}, "staff-match"))
}

func TestNew_RejectsBadSchedule(t *testing.T) {
	c := &Container{
		Config: config.Config{Sync: config.SyncConfig{Schedule: "sometimes"}},
		Logger: zap.NewNop(),
		Hub:    ws.NewHub(nil),
	}
	_, err := New(c)
	require.Error(t, err)
}

func TestNew_ServesConfigAndHealth(t *testing.T) {
	c := &Container{
		Config: config.Config{
			App:      config.AppConfig{AppName: "staff-match"},
			Frontend: config.FrontendConfig{APIBaseURL: "https://api.example.test"},
		},
		Logger: zap.NewNop(),
		Hub:    ws.NewHub(nil),
	}
	a, err := New(c)
	require.NoError(t, err)
	assert.False(t, a.Scheduler.Enabled())

	resp, err := a.Fiber.Test(httptest.NewRequest(http.MethodGet, "/api/config", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var fe config.FrontendConfig
	require.NoError(t, json.Unmarshal(b, &fe))
	assert.Equal(t, "https://api.example.test", fe.APIBaseURL)

	// No database is wired, so health reports degraded.
	resp, err = a.Fiber.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	var health struct {
		Database string `json:"database"`
		Cache    string `json:"cache"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "disabled", health.Database)
	assert.Equal(t, "disabled", health.Cache)
}
