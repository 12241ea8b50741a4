package httpx

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gassama94/drf-api/internal/shared/apperr"
	"github.com/gassama94/drf-api/internal/shared/jwt"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{apperr.Validation("bad"), http.StatusBadRequest},
		{apperr.Forbidden("no"), http.StatusForbidden},
		{apperr.AuthRequired(), http.StatusForbidden},
		{apperr.NotFound("gone"), http.StatusNotFound},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := StatusOf(tt.err); got != tt.want {
			t.Errorf("StatusOf(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestOptionalAuth(t *testing.T) {
	var seen uint
	h := OptionalAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = UserFromCtx(r)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	h.ServeHTTP(httptest.NewRecorder(), req)
	if seen != 0 {
		t.Fatalf("anonymous request carried user %d", seen)
	}

	tok, err := jwt.Make(42)
	if err != nil {
		t.Fatalf("make token: %v", err)
	}
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	h.ServeHTTP(httptest.NewRecorder(), req)
	if seen != 42 {
		t.Fatalf("expected user 42, got %d", seen)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	h.ServeHTTP(httptest.NewRecorder(), req)
	if seen != 0 {
		t.Fatalf("garbage token resolved to user %d", seen)
	}
}

func TestWrapWritesErrorBody(t *testing.T) {
	h := Wrap(func(w http.ResponseWriter, r *http.Request) error {
		return apperr.NotFound("post not found")
	})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected json content type, got %q", ct)
	}
}

func TestWrapMasksInternalErrors(t *testing.T) {
	h := Wrap(func(w http.ResponseWriter, r *http.Request) error {
		return errors.New("pq: connection refused")
	})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
	body := rr.Body.String()
	if strings.Contains(body, "connection refused") {
		t.Fatalf("internal detail leaked to the client: %s", body)
	}
	if !strings.Contains(body, "internal error") {
		t.Fatalf("expected generic message, got %s", body)
	}
}
