package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedEcho(svc *JWTService, adminOnly bool) *echo.Echo {
	e := echo.New()
	handler := func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}
	mws := []echo.MiddlewareFunc{Middleware(svc)}
	if adminOnly {
		mws = append(mws, RequireAdmin)
	}
	e.GET("/protected", handler, mws...)
	return e
}

func TestMiddleware_RejectsMissingToken(t *testing.T) {
	e := protectedEcho(NewJWTService("secret", time.Hour), false)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddleware_RejectsBadSignature(t *testing.T) {
	forged, err := NewJWTService("other-secret", time.Hour).GenerateToken(uuid.New(), "user@example.com", false)
	require.NoError(t, err)

	e := protectedEcho(NewJWTService("secret", time.Hour), false)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+forged)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddleware_AcceptsValidToken(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)
	token, err := svc.GenerateToken(uuid.New(), "user@example.com", false)
	require.NoError(t, err)

	e := protectedEcho(svc, false)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdmin(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)

	tests := []struct {
		name     string
		isAdmin  bool
		wantCode int
	}{
		{"admin passes", true, http.StatusOK},
		{"non-admin is forbidden", false, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := svc.GenerateToken(uuid.New(), "user@example.com", tt.isAdmin)
			require.NoError(t, err)

			e := protectedEcho(svc, true)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
