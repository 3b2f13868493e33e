package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/thaalam/admin-system/internal/api/metrics"
	"github.com/thaalam/admin-system/internal/core/domain"
	"github.com/thaalam/admin-system/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type sessionUser struct {
	MemberID    string `json:"member_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

type loginResponse struct {
	Token       string         `json:"token"`
	User        sessionUser    `json:"user"`
	Permissions []domain.Grant `json:"permissions"`
	LoggedInAt  time.Time      `json:"logged_in_at"`
}

// Login authenticates a member and returns a token plus the flattened
// permission grant list the console loads once per session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	token, sess, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("denied").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("ok").Inc()

	return c.JSON(http.StatusOK, loginResponse{
		Token: token,
		User: sessionUser{
			MemberID:    sess.MemberID,
			Username:    sess.Username,
			DisplayName: sess.DisplayName,
			Role:        sess.Role,
		},
		Permissions: sess.Grants,
		LoggedInAt:  sess.LoggedInAt,
	})
}

// Logout destroys the current session, invalidating its token.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	if err := h.authService.Logout(c.Request().Context(), sess.ID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "logged out"})
}

// Me returns the identity and grants of the current session.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  loginResponse
// @Failure      401  {object}  map[string]string
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		User: sessionUser{
			MemberID:    sess.MemberID,
			Username:    sess.Username,
			DisplayName: sess.DisplayName,
			Role:        sess.Role,
		},
		Permissions: sess.Grants,
		LoggedInAt:  sess.LoggedInAt,
	})
}
