package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"dinepos/internal/common"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestTenantContext(t *testing.T) {
	tenantID := uuid.New()
	e := echo.New()
	e.GET("/ping", func(c echo.Context) error {
		got, ok := common.GetTenantIDFromContext(c.Request().Context())
		require.True(t, ok)
		assert.Equal(t, tenantID, c.Get("tenant_id"))
		return c.String(http.StatusOK, got.String())
	}, TenantContext())

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"valid tenant", tenantID.String(), http.StatusOK},
		{"missing header", "", http.StatusBadRequest},
		{"malformed header", "tenant-1", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.header != "" {
				req.Header.Set(TenantHeader, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, tenantID.String(), rec.Body.String())
				return
			}
			var body common.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
			assert.Contains(t, body.Error.Details, TenantHeader)
		})
	}
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	e := echo.New()
	e.Use(echomw.RequestID(), RequestLogger(zap.New(core)))
	e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })
	e.GET("/boom", func(c echo.Context) error { return echo.NewHTTPError(http.StatusInternalServerError, "boom") })

	for _, path := range []string{"/ok", "/boom"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	entries := logs.All()
	require.Len(t, entries, 2)

	ok := entries[0].ContextMap()
	assert.Equal(t, zap.InfoLevel, entries[0].Level)
	assert.Equal(t, int64(http.StatusNoContent), ok["status"])
	assert.NotEmpty(t, ok["request_id"])

	failed := entries[1].ContextMap()
	assert.Equal(t, zap.ErrorLevel, entries[1].Level)
	assert.Equal(t, int64(http.StatusInternalServerError), failed["status"])
}

func TestVersionRoute(t *testing.T) {
	vm := NewVersionMiddleware()
	require.Equal(t, "v1", vm.GetCurrentVersion())

	e := echo.New()
	vm.VersionRoute(e, vm.GetCurrentVersion()).GET("/ping", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "v1", rec.Header().Get("X-API-Version"))
	assert.Equal(t, "Current stable API version", rec.Header().Get("X-API-Message"))
}
