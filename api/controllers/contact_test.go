package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cosmic-community/luxe-fashion-boutique-clone/internal/contact"
	pkgerrors "github.com/cosmic-community/luxe-fashion-boutique-clone/pkg/errors"
)

type stubContactService struct {
	received *contact.Submission
	err      error
}

func (s *stubContactService) Submit(_ context.Context, sub contact.Submission) error {
	s.received = &sub
	return s.err
}

func TestContactSubmitAccepted(t *testing.T) {
	svc := &stubContactService{}
	handler := ContactSubmit(svc, nil)

	w := httptest.NewRecorder()
	body := `{"name":"Ada","email":"ada@example.com","subject":"Sizing","message":"Does it run small?"}`
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/contact", strings.NewReader(body)))

	if w.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", w.Code, w.Body.String())
	}
	if svc.received == nil || svc.received.Subject != "Sizing" {
		t.Errorf("unexpected submission: %+v", svc.received)
	}
}

func TestContactSubmitValidation(t *testing.T) {
	svc := &stubContactService{}
	handler := ContactSubmit(svc, nil)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/contact", strings.NewReader(`{"name":"Ada"}`)))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if svc.received != nil {
		t.Error("service must not be called for invalid payloads")
	}
}

func TestContactSubmitDeliveryFailure(t *testing.T) {
	svc := &stubContactService{err: pkgerrors.New(pkgerrors.CodeDependency, "mail provider down")}
	handler := ContactSubmit(svc, nil)

	w := httptest.NewRecorder()
	body := `{"name":"Ada","email":"ada@example.com","subject":"x","message":"y"}`
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/contact", strings.NewReader(body)))

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
}
