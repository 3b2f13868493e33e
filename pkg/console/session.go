package console

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Grant allows a set of actions on one module, mirroring the server's
// permission model.
type Grant struct {
	Module  string   `json:"module"`
	Actions []string `json:"actions"`
}

// Identity describes the logged-in member.
type Identity struct {
	MemberID    string `json:"member_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

// Session is the result of a successful login: the bearer token plus the
// identity and grants the permission evaluator is loaded from.
type Session struct {
	Token       string    `json:"token"`
	User        Identity  `json:"user"`
	Permissions []Grant   `json:"permissions"`
	LoggedInAt  time.Time `json:"logged_in_at"`
}

// Login authenticates against the admin API and installs the returned token
// on the client. The session is also returned so the caller can load the
// permission evaluator and display the identity.
func (c *Client) Login(ctx context.Context, username, password string) (*Session, error) {
	body, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return nil, fmt.Errorf("encode credentials: %w", err)
	}

	var sess Session
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, bytes.NewReader(body), "application/json", &sess); err != nil {
		return nil, err
	}

	c.SetToken(sess.Token)
	return &sess, nil
}

// Logout revokes the server-side session and clears the client token. The
// token is cleared even when the server call fails, so a dead session never
// lingers on the client.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, "", nil)
	c.SetToken("")
	return err
}

// Me fetches the identity and grants for the current token, for restoring a
// session after a reload.
func (c *Client) Me(ctx context.Context) (*Session, error) {
	var sess Session
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, "", &sess); err != nil {
		return nil, err
	}
	sess.Token = c.Token()
	return &sess, nil
}
