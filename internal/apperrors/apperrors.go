package apperrors

import "errors"

// Domain error kinds. Repositories translate store failures into these at the
// boundary; services pass them through unchanged; only the transport layer maps
// them to HTTP statuses.
var (
	// ErrNotMatched is returned when a lookup, update or delete targeted zero rows.
	ErrNotMatched = errors.New("no matching row")

	// ErrDuplicateEntry is returned when a uniqueness constraint was violated.
	ErrDuplicateEntry = errors.New("duplicate entry")

	// ErrNoReferencedRow is returned when a foreign key constraint was violated.
	ErrNoReferencedRow = errors.New("referenced row does not exist or is still referenced")

	// ErrWrongPassword is returned when credential verification failed.
	ErrWrongPassword = errors.New("wrong password")

	// ErrPasswordPolicy is returned when a new password value is rejected,
	// e.g. it is identical to the current one.
	ErrPasswordPolicy = errors.New("password rejected by policy")

	// ErrInvalidToken is returned for malformed or tampered tokens.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned for well-signed tokens past their expiry,
	// so callers can prompt a silent refresh instead of a re-login.
	ErrExpiredToken = errors.New("expired token")

	// ErrDatabase is returned when the store produced an empty or unexpected
	// result with no more specific cause.
	ErrDatabase = errors.New("unexpected database result")
)
