package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"newsletter/internal/api"
	"newsletter/internal/api/handler/v1handler"
	"newsletter/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func newTestServer() *http.Server {
	return api.NewServer(api.Deps{Deps: v1handler.Deps{}}, api.Options{
		Addr:           ":0",
		RequestTimeout: 5 * time.Second,
		MetricsPath:    "/metrics",
	})
}

func TestServerRoutes(t *testing.T) {
	server := newTestServer()

	tests := []struct {
		name       string
		target     string
		wantStatus int
	}{
		{name: "health", target: "/health", wantStatus: http.StatusOK},
		{name: "metrics", target: "/metrics", wantStatus: http.StatusOK},
		{name: "openapi spec", target: "/specs/v1.yaml", wantStatus: http.StatusOK},
		{name: "unknown route", target: "/nope", wantStatus: http.StatusNotFound},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, test.target, nil)
			rec := httptest.NewRecorder()
			server.Handler.ServeHTTP(rec, req)

			require.Equal(t, test.wantStatus, rec.Code)
		})
	}
}

func TestServerCORSPreflight(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodOptions, "/subscriptions", nil)
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
