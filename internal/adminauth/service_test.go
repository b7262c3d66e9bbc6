package adminauth

import (
	"context"
	"testing"

	"github.com/medinathreads/medina-backend/pkg/auth"
	"github.com/medinathreads/medina-backend/pkg/config"
	pkgerrors "github.com/medinathreads/medina-backend/pkg/errors"
	"github.com/medinathreads/medina-backend/pkg/security"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfigs(t *testing.T, password string) (config.AdminConfig, config.JWTConfig) {
	t.Helper()

	hash, err := security.HashPassword(password, config.PasswordConfig{})
	require.NoError(t, err)

	admin := config.AdminConfig{
		Email:        "owner@medinathreads.com",
		PasswordHash: hash,
	}
	jwt := config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "medina-backend",
		ExpirationMinutes: 60,
	}
	return admin, jwt
}

func TestLoginSuccess(t *testing.T) {
	admin, jwtCfg := testConfigs(t, "s3cret-pass")
	svc, err := NewService(admin, jwtCfg)
	require.NoError(t, err)

	result, err := svc.Login(context.Background(), "owner@medinathreads.com", "s3cret-pass")
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)
	assert.Equal(t, admin.Email, result.Email)

	claims, err := auth.ParseAdminToken(jwtCfg, result.Token)
	require.NoError(t, err)
	assert.Equal(t, admin.Email, claims.Email)
}

func TestLoginEmailCaseInsensitive(t *testing.T) {
	admin, jwtCfg := testConfigs(t, "s3cret-pass")
	svc, err := NewService(admin, jwtCfg)
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "OWNER@MedinaThreads.com", "s3cret-pass")
	require.NoError(t, err)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	admin, jwtCfg := testConfigs(t, "s3cret-pass")
	svc, err := NewService(admin, jwtCfg)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = svc.Login(ctx, "owner@medinathreads.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeUnauthorized, pkgerrors.As(err).Code())

	_, err = svc.Login(ctx, "intruder@example.com", "s3cret-pass")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeUnauthorized, pkgerrors.As(err).Code())

	_, err = svc.Login(ctx, "", "")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestNewServiceRequiresConfig(t *testing.T) {
	_, err := NewService(config.AdminConfig{}, config.JWTConfig{Secret: "x"})
	require.Error(t, err)

	_, err = NewService(config.AdminConfig{Email: "a@b.c", PasswordHash: "h"}, config.JWTConfig{})
	require.Error(t, err)
}
