package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	pkgserver "github.com/DjordjeVuckovic/rpn/pkg/server"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticHealthChecker bool

func (h staticHealthChecker) Healthy(context.Context) bool {
	return bool(h)
}

func testConfig() *Config {
	return &Config{Port: "0", CorsOrigins: []string{"*"}}
}

func TestSetupHealthChecks(t *testing.T) {
	tests := []struct {
		name    string
		healthy bool
		want    int
	}{
		{"healthy", true, http.StatusOK},
		{"unhealthy", false, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hc := staticHealthChecker(tt.healthy)
			s := New(testConfig(), hc).SetupMiddlewares().SetupErrorHandler().SetupHealthChecks("/health")
			defer s.Stop()

			rec := httptest.NewRecorder()
			s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestSetupErrorHandler(t *testing.T) {
	s := New(testConfig(), pkgserver.NewOkHealthChecker()).SetupErrorHandler()
	defer s.Stop()

	s.Echo.GET("/boom", func(c echo.Context) error {
		return assert.AnError
	})

	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal server error")
}

func TestStart_StopsGracefully(t *testing.T) {
	s := New(testConfig(), pkgserver.NewOkHealthChecker())

	done := make(chan error, 1)
	go func() { done <- s.Start() }()

	time.Sleep(100 * time.Millisecond)
	s.Stop()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(GracefulShutdownTimeout):
		t.Fatal("server did not stop")
	}

	select {
	case <-s.ShutdownSignal():
	default:
		t.Fatal("shutdown signal not closed")
	}
	assert.Error(t, s.Context().Err())
}
