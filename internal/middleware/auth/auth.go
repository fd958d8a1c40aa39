package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sebasmzg/characters-api/internal/repo"
	"github.com/sebasmzg/characters-api/pkg/tokens"
)

const claimsKey = "authClaims"

// Denial is a rejection verdict. It becomes an HTTP response only at the
// middleware boundary, the decision itself does no I/O.
type Denial struct {
	Status  int
	Message string
}

type Middleware struct {
	Secret  []byte
	Revoked *repo.RevokedTokens
}

func New(secret []byte, revoked *repo.RevokedTokens) *Middleware {
	return &Middleware{Secret: secret, Revoked: revoked}
}

// BearerToken pulls the raw token out of an Authorization header value.
func BearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// Decide runs the authentication checks in order, short-circuiting on the
// first failure. A missing credential is 401; a credential that is present
// but revoked or invalid is 403. That asymmetry is deliberate.
func (m *Middleware) Decide(authHeader string) (*tokens.AccessClaims, *Denial) {
	token := BearerToken(authHeader)
	if token == "" {
		return nil, &Denial{Status: http.StatusUnauthorized, Message: "Unauthorized"}
	}

	if m.Revoked.IsRevoked(token) {
		return nil, &Denial{Status: http.StatusForbidden, Message: "Forbidden"}
	}

	claims, err := tokens.AccessClaimsFromToken(token, m.Secret)
	if err != nil {
		return nil, &Denial{Status: http.StatusForbidden, Message: "Forbidden"}
	}

	return claims, nil
}

func (m *Middleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, denial := m.Decide(c.Request().Header.Get(echo.HeaderAuthorization))
		if denial != nil {
			return echo.NewHTTPError(denial.Status, denial.Message)
		}

		c.Set(claimsKey, claims)
		return next(c)
	}
}

// RequireRoles lets the request through only when the authenticated role is
// in the allow-list. Absent claims mean some route skipped RequireAuth and
// are treated as forbidden rather than a panic.
func RequireRoles(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := ClaimsFrom(c)
			if claims == nil {
				return echo.NewHTTPError(http.StatusForbidden, "Forbidden")
			}
			for _, role := range roles {
				if claims.Role == role {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "Forbidden")
		}
	}
}

// ClaimsFrom returns the claims stored by RequireAuth, nil when the request
// never passed authentication.
func ClaimsFrom(c echo.Context) *tokens.AccessClaims {
	claims, _ := c.Get(claimsKey).(*tokens.AccessClaims)
	return claims
}
