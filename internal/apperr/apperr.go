package apperr

import (
	"errors"
	"net/http"
)

// Kind identifies one of the finite failure categories the API can report.
type Kind int

const (
	KindUnknown Kind = iota
	KindMalformedBody
	KindValidationFailed
	KindDuplicateEmail
	KindStoreUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindMalformedBody:
		return "malformed_body"
	case KindValidationFailed:
		return "validation_failed"
	case KindDuplicateEmail:
		return "duplicate_email"
	case KindStoreUnavailable:
		return "store_unavailable"
	default:
		return "unknown"
	}
}

const (
	msgMalformedBody    = "Malformed request body"
	msgValidationFailed = "Missing or invalid required fields"
	msgDuplicateEmail   = "Email already exists"
	msgStoreUnavailable = "Database is unavailable"
	msgInternal         = "Internal server error"
)

// Error is an application failure with a kind, a user-facing message, and an
// optional underlying cause. Validation failures additionally carry the list
// of violated fields.
type Error struct {
	Kind    Kind
	Message string
	Fields  []string
	cause   error
}

// Error returns the user-facing message; the cause stays server-side.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap provides compatibility with errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.cause
}

// Status maps the kind to its HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindMalformedBody, KindValidationFailed:
		return http.StatusBadRequest
	case KindDuplicateEmail:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func MalformedBody(cause error) *Error {
	return &Error{Kind: KindMalformedBody, Message: msgMalformedBody, cause: cause}
}

func ValidationFailed(fields []string) *Error {
	return &Error{Kind: KindValidationFailed, Message: msgValidationFailed, Fields: fields}
}

func DuplicateEmail() *Error {
	return &Error{Kind: KindDuplicateEmail, Message: msgDuplicateEmail}
}

func StoreUnavailable(cause error) *Error {
	return &Error{Kind: KindStoreUnavailable, Message: msgStoreUnavailable, cause: cause}
}

func Unknown(cause error) *Error {
	return &Error{Kind: KindUnknown, Message: msgInternal, cause: cause}
}

// KindOf classifies any error. Errors that are not (and do not wrap) an
// *Error report KindUnknown.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}
