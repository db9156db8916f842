package backend

import (
	"context"
	"fmt"

	"room-booking-frontend/internal/entity"
)

// Registration mirrors the register endpoint's body.
type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	DOB      string `json:"dob"`
	IsAdmin  bool   `json:"isAdmin"`
}

// identityResponse is the identity+token payload returned by both auth
// endpoints.
type identityResponse struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
	Token   string `json:"token"`
}

func (r *identityResponse) toSession() (*entity.Session, error) {
	sess := &entity.Session{
		ID:    r.ID,
		Email: r.Email,
		Role:  entity.RoleUser,
		Token: r.Token,
	}
	if r.IsAdmin {
		sess.Role = entity.RoleAdmin
	}
	if !sess.Complete() {
		return nil, fmt.Errorf("%w: incomplete identity payload", ErrMalformedResponse)
	}
	return sess, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*entity.Session, error) {
	body := map[string]string{"email": email, "password": password}

	var identity identityResponse
	if err := c.call(ctx, "POST", "/api/auth/login", body, "", &identity); err != nil {
		return nil, err
	}
	return identity.toSession()
}

func (c *Client) Register(ctx context.Context, req *Registration) (*entity.Session, error) {
	var identity identityResponse
	if err := c.call(ctx, "POST", "/api/auth/register", req, "", &identity); err != nil {
		return nil, err
	}
	return identity.toSession()
}
