package service

import (
	"context"
	"strings"

	"room-booking-frontend/internal/backend"
	"room-booking-frontend/internal/entity"
)

// RegisterRequest carries the registration form fields.
type RegisterRequest struct {
	Username string
	Email    string
	Password string
	DOB      string
	IsAdmin  bool
}

type authService struct {
	api backend.AuthAPI
}

func NewAuthService(api backend.AuthAPI) AuthService {
	return &authService{api: api}
}

func (s *authService) Login(ctx context.Context, email, password string) (*entity.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, entity.ErrMissingCredentials
	}
	return s.api.Login(ctx, email, password)
}

func (s *authService) Register(ctx context.Context, req *RegisterRequest) (*entity.Session, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if req.Username == "" || req.Email == "" || req.Password == "" || req.DOB == "" {
		return nil, entity.ErrMissingRegistration
	}

	return s.api.Register(ctx, &backend.Registration{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		DOB:      req.DOB,
		IsAdmin:  req.IsAdmin,
	})
}
