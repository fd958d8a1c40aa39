package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sebasmzg/characters-api/internal/models"
	"github.com/sebasmzg/characters-api/internal/repo"
	"github.com/sebasmzg/characters-api/pkg/tokens"
)

var testSecret = []byte("test-jwt-secret")

func newTestMiddleware() *Middleware {
	return New(testSecret, repo.NewRevokedTokens())
}

func signTestToken(t *testing.T, role string) string {
	t.Helper()
	token, err := tokens.SignAccessToken(1, role, "a@x.com", testSecret)
	require.NoError(t, err)
	return token
}

func TestBearerToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "well formed", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc", want: "abc"},
		{name: "empty header", header: "", want: ""},
		{name: "wrong scheme", header: "Basic abc", want: ""},
		{name: "scheme only", header: "Bearer", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BearerToken(tt.header))
		})
	}
}

func TestDecide_MissingCredentialIs401(t *testing.T) {
	t.Parallel()

	m := newTestMiddleware()

	claims, denial := m.Decide("")
	assert.Nil(t, claims)
	require.NotNil(t, denial)
	assert.Equal(t, http.StatusUnauthorized, denial.Status)
}

func TestDecide_RevokedTokenIs403(t *testing.T) {
	t.Parallel()

	m := newTestMiddleware()
	token := signTestToken(t, models.RoleUser)
	m.Revoked.Revoke(token, time.Now().Add(time.Hour))

	claims, denial := m.Decide("Bearer " + token)
	assert.Nil(t, claims)
	require.NotNil(t, denial)
	assert.Equal(t, http.StatusForbidden, denial.Status)
}

func TestDecide_InvalidTokenIs403(t *testing.T) {
	t.Parallel()

	m := newTestMiddleware()

	claims, denial := m.Decide("Bearer not-a-token")
	assert.Nil(t, claims)
	require.NotNil(t, denial)
	assert.Equal(t, http.StatusForbidden, denial.Status)
}

func TestDecide_ValidToken(t *testing.T) {
	t.Parallel()

	m := newTestMiddleware()
	token := signTestToken(t, models.RoleAdmin)

	claims, denial := m.Decide("Bearer " + token)
	require.Nil(t, denial)
	require.NotNil(t, claims)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.Equal(t, "a@x.com", claims.Email)
}

func newProtectedEcho(m *Middleware, roles ...string) *echo.Echo {
	e := echo.New()
	g := e.Group("/protected", m.RequireAuth)
	g.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"email": ClaimsFrom(c).Email})
	}, RequireRoles(roles...))
	return e
}

func TestRequireAuth_And_RequireRoles(t *testing.T) {
	t.Parallel()

	m := newTestMiddleware()
	e := newProtectedEcho(m, models.RoleAdmin)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{name: "no header", authHeader: "", wantStatus: http.StatusUnauthorized},
		{name: "garbage token", authHeader: "Bearer nope", wantStatus: http.StatusForbidden},
		{name: "user role not allowed", authHeader: "Bearer " + signTestToken(t, models.RoleUser), wantStatus: http.StatusForbidden},
		{name: "admin role allowed", authHeader: "Bearer " + signTestToken(t, models.RoleAdmin), wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.authHeader)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRequireRoles_MissingClaimsIs403(t *testing.T) {
	t.Parallel()

	e := echo.New()
	// RequireAuth deliberately absent: claims never reach the context.
	e.GET("/broken", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, RequireRoles(models.RoleAdmin))

	req := httptest.NewRequest(http.MethodGet, "/broken", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAuth_RevokedAfterIssueIs403(t *testing.T) {
	t.Parallel()

	m := newTestMiddleware()
	e := newProtectedEcho(m, models.RoleAdmin)
	token := signTestToken(t, models.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	m.Revoked.Revoke(token, time.Now().Add(time.Hour))

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
