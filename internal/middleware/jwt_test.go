package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/railway-seat-tracker/internal/middleware"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret, sub, role string, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"exp":  exp.Unix(),
	})
	signed, err := tok.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func runProtected(t *testing.T, authHeader string, mws ...echo.MiddlewareFunc) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/empty-seats/T1/Gwalior", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	require.NoError(t, h(c))
	return rec, c
}

func TestJWTAuth(t *testing.T) {
	t.Run("valid token passes and exposes claims", func(t *testing.T) {
		tok := signToken(t, testSecret, "op-7", "OPERATOR", time.Now().Add(time.Hour))
		rec, c := runProtected(t, "Bearer "+tok, middleware.JWTAuth(testSecret))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "op-7", c.Get("user_id"))
		assert.Equal(t, "OPERATOR", c.Get("role"))
	})

	t.Run("missing header", func(t *testing.T) {
		rec, _ := runProtected(t, "", middleware.JWTAuth(testSecret))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		tok := signToken(t, "other-secret", "op-7", "OPERATOR", time.Now().Add(time.Hour))
		rec, _ := runProtected(t, "Bearer "+tok, middleware.JWTAuth(testSecret))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		tok := signToken(t, testSecret, "op-7", "OPERATOR", time.Now().Add(-time.Minute))
		rec, _ := runProtected(t, "Bearer "+tok, middleware.JWTAuth(testSecret))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireRole(t *testing.T) {
	auth := middleware.JWTAuth(testSecret)

	t.Run("operator may mutate", func(t *testing.T) {
		tok := signToken(t, testSecret, "op-7", "OPERATOR", time.Now().Add(time.Hour))
		rec, _ := runProtected(t, "Bearer "+tok, auth, middleware.RequireRole("OPERATOR"))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("inspector may not mutate", func(t *testing.T) {
		tok := signToken(t, testSecret, "ins-3", "INSPECTOR", time.Now().Add(time.Hour))
		rec, _ := runProtected(t, "Bearer "+tok, auth, middleware.RequireRole("OPERATOR"))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("inspector may read", func(t *testing.T) {
		tok := signToken(t, testSecret, "ins-3", "INSPECTOR", time.Now().Add(time.Hour))
		rec, _ := runProtected(t, "Bearer "+tok, auth, middleware.RequireRole("OPERATOR", "INSPECTOR"))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
