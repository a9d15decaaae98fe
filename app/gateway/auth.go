package gateway

import (
	"context"

	"work-sync-admin/app/models"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// Login exchanges admin credentials for a bearer token. It is the only
// call made without an established session.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var resp LoginResponse
	req := LoginRequest{Email: email, Password: password}
	if err := c.Post(ctx, models.Session{}, "/admin/api/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.Post(ctx, models.Session{}, "/admin/api/register", req, nil)
}

func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.Post(ctx, models.Session{}, "/admin/api/forgot-password", body, nil)
}
