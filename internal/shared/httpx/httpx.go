package httpx

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gassama94/drf-api/internal/shared/apperr"
	"github.com/gassama94/drf-api/internal/shared/jwt"
)

type HandlerFunc func(http.ResponseWriter, *http.Request) error

// Wrap adapts an error-returning handler. Taxonomy errors carry their
// message to the client; anything else is an internal failure, logged in
// full and masked in the response.
func Wrap(fn HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}
		status := StatusOf(err)
		msg := err.Error()
		if status == http.StatusInternalServerError {
			log.Printf("%s %s: %v", r.Method, r.URL.Path, err)
			msg = "internal error"
		}
		WriteJSON(w, map[string]any{"error": msg}, status)
	})
}

// StatusOf maps a taxonomy error to its HTTP status. Unauthenticated writes
// map to 403 rather than 401, matching the API contract. Errors outside the
// taxonomy, such as a database outage, are internal.
func StatusOf(err error) int {
	kind, ok := apperr.KindOf(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch kind {
	case apperr.KindForbidden, apperr.KindAuthRequired:
		return http.StatusForbidden
	case apperr.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

func Decode[T any](r *http.Request) (T, error) {
	var t T
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		return t, apperr.Validation("invalid json body")
	}
	return t, nil
}

func WriteJSON(w http.ResponseWriter, v any, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

type ctxKey int

const ctxUserIDKey ctxKey = iota

// OptionalAuth parses a bearer token when one is present and stores the
// caller's user id in the request context. Anonymous requests pass through
// untouched; handlers decide per operation whether an identity is required.
func OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := r.Header.Get("Authorization")
		if strings.HasPrefix(h, "Bearer ") {
			tok := strings.TrimSpace(h[7:])
			if uid, err := jwt.Parse(tok); err == nil && uid != 0 {
				ctx := context.WithValue(r.Context(), ctxUserIDKey, uid)
				r = r.WithContext(ctx)
			}
		}
		next.ServeHTTP(w, r)
	})
}

// UserFromCtx returns the authenticated user id, or 0 for anonymous callers.
func UserFromCtx(r *http.Request) uint {
	uid, _ := r.Context().Value(ctxUserIDKey).(uint)
	return uid
}

// RequireUser returns the authenticated user id or the error a write
// handler should surface for anonymous callers.
func RequireUser(r *http.Request) (uint, error) {
	uid := UserFromCtx(r)
	if uid == 0 {
		return 0, apperr.AuthRequired()
	}
	return uid, nil
}

func QueryInt(r *http.Request, key string, def int) int {
	s := r.URL.Query().Get(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// QueryUint returns 0 when the parameter is absent or malformed.
func QueryUint(r *http.Request, key string) uint {
	s := r.URL.Query().Get(key)
	if s == "" {
		return 0
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return uint(n)
}

// PathID parses the {id} segment of a detail route.
func PathID(r *http.Request) (uint, error) {
	n, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil || n == 0 {
		return 0, apperr.NotFound("not found")
	}
	return uint(n), nil
}
