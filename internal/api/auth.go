package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Auth types the login form supports.
const (
	AuthTypePassword  = "email-password"
	AuthTypeEmailCode = "email-code"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Verify   string `json:"verify"`
	AuthType string `json:"authType"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials (password or email code) for a bearer token.
func (c *Client) Login(ctx context.Context, req LoginRequest) (string, error) {
	var res loginResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", req, &res); err != nil {
		return "", err
	}
	if res.Token == "" {
		return "", fmt.Errorf("login succeeded but no token returned")
	}
	return res.Token, nil
}

type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	EmailCode string `json:"emailCode"`
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/api/auth/register", req, nil)
}

type sendEmailCodeRequest struct {
	Email string `json:"email"`
}

// SendEmailCode asks the backend to mail a verification code.
func (c *Client) SendEmailCode(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/api/auth/send-email-code", sendEmailCodeRequest{Email: email}, nil)
}

type ResetPasswordRequest struct {
	Identifier  string `json:"identifier"`
	Code        string `json:"code"`
	NewPassword string `json:"newPassword"`
}

func (c *Client) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	return c.do(ctx, http.MethodPost, "/api/auth/reset-password", req, nil)
}

// Logout invalidates the token server-side. Local teardown happens
// regardless of the outcome.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
}

// User is the authenticated profile; the workflows only need identity and
// role from it.
type User struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Major    string `json:"major"`
	Phone    string `json:"phone"`
	Avatar   string `json:"avatar"`
}

// meResponse tolerates both the wrapped {"user": {...}} and the bare
// profile shape.
type meResponse struct {
	User User
}

func (m *meResponse) UnmarshalJSON(data []byte) error {
	var wrapped struct {
		User *User `json:"user"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.User != nil {
		m.User = *wrapped.User
		return nil
	}
	return json.Unmarshal(data, &m.User)
}

// Me returns the current user's profile.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var res meResponse
	if err := c.do(ctx, http.MethodGet, "/api/user/me", nil, &res); err != nil {
		return nil, err
	}
	return &res.User, nil
}
