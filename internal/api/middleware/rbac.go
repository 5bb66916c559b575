package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lexbridge/legal-assistant/internal/api/session"
	"github.com/lexbridge/legal-assistant/internal/core/domain"
)

// RequireAdmin enforces the admin role. It must run after AttachUser.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := session.CurrentUser(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, errUnauthorized)
			}

			switch user.Role {
			case domain.RoleAdmin:
				return next(c)
			case domain.RoleUser:
				return c.JSON(http.StatusForbidden, errForbidden)
			default:
				return c.JSON(http.StatusForbidden, errForbidden)
			}
		}
	}
}
