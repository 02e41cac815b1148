package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthHandler(t *testing.T) {
	logger := slog.Default()

	t.Run("liveness always reports ok", func(t *testing.T) {
		mux := http.NewServeMux()
		NewHealthHandler(logger, nil).RegisterRoutes(mux)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"ok"`)
	})

	t.Run("readiness passes when all checks pass", func(t *testing.T) {
		mux := http.NewServeMux()
		NewHealthHandler(logger, map[string]ReadyCheck{
			"postgres": func(ctx context.Context) error { return nil },
		}).RegisterRoutes(mux)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("readiness fails when a dependency is down", func(t *testing.T) {
		mux := http.NewServeMux()
		NewHealthHandler(logger, map[string]ReadyCheck{
			"postgres": func(ctx context.Context) error { return fmt.Errorf("connection refused") },
		}).RegisterRoutes(mux)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "postgres")
	})
}
