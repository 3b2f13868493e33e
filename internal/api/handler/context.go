package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/thaalam/admin-system/internal/core/domain"
)

// ctxSession extracts the session injected by the Auth middleware. Its
// presence proves the middleware ran; handlers behind the auth group must
// never see a request without one.
func ctxSession(c echo.Context) (*domain.Session, error) {
	sess, _ := c.Get("session").(*domain.Session)
	if sess == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication session")
	}
	return sess, nil
}
