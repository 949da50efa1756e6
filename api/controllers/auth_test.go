package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cosmic-community/luxe-fashion-boutique-clone/api/middleware"
	"github.com/cosmic-community/luxe-fashion-boutique-clone/internal/auth"
	pkgerrors "github.com/cosmic-community/luxe-fashion-boutique-clone/pkg/errors"
	"github.com/cosmic-community/luxe-fashion-boutique-clone/pkg/types"
)

type stubAuthService struct {
	signupReq *auth.SignupRequest
	loginReq  *auth.LoginRequest
	meUserID  string
	result    *auth.AuthResult
	user      *auth.AuthUser
	err       error
}

func (s *stubAuthService) Signup(_ context.Context, req auth.SignupRequest) (*auth.AuthResult, error) {
	s.signupReq = &req
	return s.result, s.err
}

func (s *stubAuthService) Login(_ context.Context, req auth.LoginRequest) (*auth.AuthResult, error) {
	s.loginReq = &req
	return s.result, s.err
}

func (s *stubAuthService) Me(_ context.Context, userID string) (*auth.AuthUser, error) {
	s.meUserID = userID
	return s.user, s.err
}

func TestAuthSignupReturnsCreated(t *testing.T) {
	svc := &stubAuthService{result: &auth.AuthResult{
		Token: "signed",
		User:  auth.AuthUser{ID: "u1", Name: "Ada", Email: "ada@example.com"},
	}}
	handler := AuthSignup(svc, nil)

	w := httptest.NewRecorder()
	body := `{"name":"Ada","email":"ada@example.com","password":"correct horse"}`
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", strings.NewReader(body)))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if svc.signupReq == nil || svc.signupReq.Email != "ada@example.com" {
		t.Errorf("unexpected service call: %+v", svc.signupReq)
	}
}

func TestAuthSignupRejectsShortPassword(t *testing.T) {
	svc := &stubAuthService{}
	handler := AuthSignup(svc, nil)

	w := httptest.NewRecorder()
	body := `{"name":"Ada","email":"ada@example.com","password":"short"}`
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", strings.NewReader(body)))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if svc.signupReq != nil {
		t.Error("service must not be called for invalid payloads")
	}

	var envelope types.ErrorEnvelope
	if err := json.NewDecoder(w.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	details, ok := envelope.Error.Details.(map[string]any)
	if !ok || details["password"] == nil {
		t.Errorf("expected a password field error, got %v", envelope.Error.Details)
	}
}

func TestAuthLoginPassesCredentialErrorThrough(t *testing.T) {
	svc := &stubAuthService{err: pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid email or password")}
	handler := AuthLogin(svc, nil)

	w := httptest.NewRecorder()
	body := `{"email":"ada@example.com","password":"wrong"}`
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body)))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}

	var envelope types.ErrorEnvelope
	if err := json.NewDecoder(w.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Error.Message != "invalid email or password" {
		t.Errorf("unexpected message %q", envelope.Error.Message)
	}
}

func TestAuthMeReadsIdentityFromContext(t *testing.T) {
	svc := &stubAuthService{user: &auth.AuthUser{ID: "u1", Name: "Ada", Email: "ada@example.com"}}
	handler := AuthMe(svc, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	r = r.WithContext(middleware.WithUserID(r.Context(), "u1"))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if svc.meUserID != "u1" {
		t.Errorf("expected lookup for u1, got %q", svc.meUserID)
	}
}

func TestAuthMeWithoutIdentity(t *testing.T) {
	handler := AuthMe(&stubAuthService{}, nil)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without context identity, got %d", w.Code)
	}
}
