package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/viniciusflorencio2008/leilao/internal/services"
)

const (
	ContextUserID  = "user_id"
	ContextIsAdmin = "is_admin"
)

// JWT authenticates the bearer token and stores the caller identity on the
// request context. Handlers downstream trust these values.
func JWT(auth *services.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authorization token required")
			}

			token := strings.TrimPrefix(header, "Bearer ")
			if token == header {
				return echo.NewHTTPError(http.StatusUnauthorized, "bearer token required")
			}

			claims, err := auth.ValidateToken(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(ContextUserID, claims.UserID)
			c.Set(ContextIsAdmin, claims.IsAdmin)

			return next(c)
		}
	}
}

// UserID reads the authenticated user id set by JWT.
func UserID(c echo.Context) string {
	if id, ok := c.Get(ContextUserID).(string); ok {
		return id
	}
	return ""
}

// IsAdmin reads the admin flag set by JWT.
func IsAdmin(c echo.Context) bool {
	if admin, ok := c.Get(ContextIsAdmin).(bool); ok {
		return admin
	}
	return false
}
