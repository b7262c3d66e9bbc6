package adminauth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/medinathreads/medina-backend/pkg/auth"
	"github.com/medinathreads/medina-backend/pkg/config"
	pkgerrors "github.com/medinathreads/medina-backend/pkg/errors"
	"github.com/medinathreads/medina-backend/pkg/security"
)

// LoginResult carries the minted bearer token for the admin dashboard.
type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Email     string    `json:"email"`
}

// Service verifies the single configured back-office identity and mints
// admin session tokens. There is no admin user table: the storefront has
// exactly one operator, configured through the environment.
type Service interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

type service struct {
	admin config.AdminConfig
	jwt   config.JWTConfig
	now   func() time.Time
}

// NewService constructs the admin auth service.
func NewService(admin config.AdminConfig, jwt config.JWTConfig) (Service, error) {
	if admin.Email == "" || admin.PasswordHash == "" {
		return nil, fmt.Errorf("admin credentials not configured")
	}
	if jwt.Secret == "" {
		return nil, fmt.Errorf("jwt secret not configured")
	}
	return &service{admin: admin, jwt: jwt, now: time.Now}, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email and password required")
	}

	if !strings.EqualFold(email, s.admin.Email) {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
	}

	ok, err := security.VerifyPassword(password, s.admin.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
	}

	now := s.now().UTC()
	token, err := auth.MintAdminToken(s.jwt, now, auth.AdminTokenPayload{Email: s.admin.Email})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint admin token")
	}

	return &LoginResult{
		Token:     token,
		ExpiresAt: now.Add(time.Duration(s.jwt.ExpirationMinutes) * time.Minute),
		Email:     s.admin.Email,
	}, nil
}
