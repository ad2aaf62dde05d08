package middleware

import (
	"net/http"
	"strings"

	"expenseflow-backend/pkg/token"

	"github.com/labstack/echo/v4"
)

const (
	ctxUserID       = "auth.user_id"
	ctxUserPublicID = "auth.user_public_id"
	ctxRole         = "auth.role"
)

// JWTAuth validates the bearer token and stores the caller's identity on the
// echo context for downstream handlers.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization))
			if raw == "" || !strings.HasPrefix(strings.ToLower(raw), "bearer ") {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}
			claims, err := token.Validate(raw[len("bearer "):], secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
			}
			SetIdentity(c, claims.UserID, claims.Subject, claims.Role)
			return next(c)
		}
	}
}

// RequireRoles rejects callers whose role is not in the allow list. Must run
// after JWTAuth.
func RequireRoles(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := allowed[Role(c)]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "insufficient role"})
			}
			return next(c)
		}
	}
}

// SetIdentity stores the caller's identity on the context. JWTAuth calls it
// on every authenticated request; tests call it to fake a caller.
func SetIdentity(c echo.Context, userID uint64, publicID, role string) {
	c.Set(ctxUserID, userID)
	c.Set(ctxUserPublicID, publicID)
	c.Set(ctxRole, role)
}

// UserID returns the authenticated caller's numeric id, zero when the request
// did not pass JWTAuth.
func UserID(c echo.Context) uint64 {
	id, _ := c.Get(ctxUserID).(uint64)
	return id
}

func UserPublicID(c echo.Context) string {
	s, _ := c.Get(ctxUserPublicID).(string)
	return s
}

func Role(c echo.Context) string {
	s, _ := c.Get(ctxRole).(string)
	return s
}
