// Package authz holds the single capability check every resource's mutation
// path goes through: reads are open, writes belong to the record's owner.
package authz

import (
	"net/http"

	"github.com/gassama94/drf-api/internal/shared/apperr"
)

func safe(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

// Authorize decides whether requester (0 = anonymous) may perform method on a
// record owned by ownerID. Safe methods are always allowed; a non-owner gets
// a 403-class error, never a 404, so record existence is not hidden.
func Authorize(method string, requester, ownerID uint) error {
	if safe(method) {
		return nil
	}
	if requester == 0 {
		return apperr.AuthRequired()
	}
	if requester != ownerID {
		return apperr.Forbidden("you do not own this record")
	}
	return nil
}
