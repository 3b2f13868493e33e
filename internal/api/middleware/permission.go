package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/thaalam/admin-system/internal/core/domain"
)

// RequireModuleAction gates a route on the session's module grants.
// A missing session or unlisted action denies, the admin role always passes.
// The matching client-side check is advisory only, this middleware is the
// authorization boundary.
func RequireModuleAction(module string, action domain.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, _ := c.Get("session").(*domain.Session)
			if !sess.Allows(module, action) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
