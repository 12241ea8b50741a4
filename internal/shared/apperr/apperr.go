// Package apperr defines the request-level error taxonomy. Every error a
// handler or repository returns is one of these kinds; httpx.Wrap maps them
// to HTTP status codes at the request boundary.
package apperr

import "errors"

type Kind int

const (
	// KindValidation covers malformed input, rejected images and duplicate
	// relation inserts. Maps to 400.
	KindValidation Kind = iota
	// KindForbidden is an authenticated caller mutating a record it does
	// not own. Maps to 403.
	KindForbidden
	// KindAuthRequired is an anonymous caller attempting a write. Also 403.
	KindAuthRequired
	// KindNotFound is a detail request for a missing record. Maps to 404.
	KindNotFound
)

type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func Validation(msg string) error { return &Error{Kind: KindValidation, Msg: msg} }
func Forbidden(msg string) error  { return &Error{Kind: KindForbidden, Msg: msg} }
func NotFound(msg string) error   { return &Error{Kind: KindNotFound, Msg: msg} }

func AuthRequired() error { return &Error{Kind: KindAuthRequired, Msg: "authentication required"} }

// KindOf reports the kind of err and whether err belongs to the taxonomy.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
