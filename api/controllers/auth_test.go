package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	authsvc "github.com/medinathreads/medina-backend/internal/adminauth"
	pkgerrors "github.com/medinathreads/medina-backend/pkg/errors"
)

type stubAuthService struct {
	loginFn func(ctx context.Context, email, password string) (*authsvc.LoginResult, error)
}

func (s stubAuthService) Login(ctx context.Context, email, password string) (*authsvc.LoginResult, error) {
	if s.loginFn != nil {
		return s.loginFn(ctx, email, password)
	}
	return &authsvc.LoginResult{Token: "token", Email: email}, nil
}

func TestAdminLoginSuccess(t *testing.T) {
	handler := AdminLogin(stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*authsvc.LoginResult, error) {
			if email != "admin@example.com" || password != "swordfish" {
				t.Fatalf("unexpected credentials %q %q", email, password)
			}
			return &authsvc.LoginResult{Token: "signed-jwt", Email: email}, nil
		},
	}, nil)

	body := `{"email":"admin@example.com","password":"swordfish"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/auth/login", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data authsvc.LoginResult `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Token != "signed-jwt" {
		t.Fatalf("unexpected token %q", envelope.Data.Token)
	}
}

func TestAdminLoginRejectsBadCredentials(t *testing.T) {
	handler := AdminLogin(stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*authsvc.LoginResult, error) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
		},
	}, nil)

	body := `{"email":"admin@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/auth/login", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestAdminLoginRejectsMalformedEmail(t *testing.T) {
	handler := AdminLogin(stubAuthService{}, nil)

	body := `{"email":"not-an-email","password":"x"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/auth/login", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
