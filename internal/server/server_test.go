package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"officehub-be/internal/bootstrap"
	"officehub-be/internal/config"
	"officehub-be/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*Server, *bootstrap.Container) {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{
		App: config.AppConfig{
			Port:               "0",
			Environment:        "test",
			LogFilePath:        filepath.Join(dir, "app.log"),
			AuditLogFilePath:   filepath.Join(dir, "audit.log"),
			CorsAllowedOrigins: "http://localhost:5173",
			JWTSecret:          "server-test-secret",
		},
		Trash:     config.TrashConfig{GracePeriodDays: 30, SettingsCacheTTLMinutes: 1},
		Scheduler: config.SchedulerConfig{},
	}

	container := bootstrap.NewContainer(testutil.NewTestDB(t), cfg)
	t.Cleanup(container.Close)

	return New(cfg, container), container
}

func TestServer_Routes(t *testing.T) {
	srv, _ := newTestServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{"health", http.MethodGet, "/healthz", http.StatusOK},
		{"trash requires token", http.MethodGet, "/api/trash/v1", http.StatusUnauthorized},
		{"settings require token", http.MethodGet, "/api/auto-delete/v1/setting", http.StatusUnauthorized},
		{"unknown route", http.MethodGet, "/api/notes/v1", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := srv.GetApp().Test(httptest.NewRequest(tt.method, tt.path, nil), -1)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestServer_MetricsAfterRun(t *testing.T) {
	srv, container := newTestServer(t)

	_, ran := container.Scheduler.RunOnce(context.Background())
	require.True(t, ran)

	resp, err := srv.GetApp().Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `officehub_auto_delete_runs_total{outcome="completed"} 1`)

	families, err := container.Metrics.Gatherer().Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "officehub_auto_delete_last_run_timestamp_seconds")
}
