// Package util holds small shared helpers: application error values and
// error matching.
package util

import "errors"

// Common application-specific errors. Services wrap these with context via
// fmt.Errorf("...: %w", Err...); the handler layer maps them to HTTP status
// codes. All are deterministic validation failures, never retried.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrNotMember          = errors.New("user is not a member of this group")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrSelfSettlement     = errors.New("cannot settle payment with yourself")
	ErrGroupClosed        = errors.New("group is closed")
	ErrDuplicate          = errors.New("duplicate entry")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input provided")
	ErrForbidden          = errors.New("operation not allowed")
)

// IsError reports whether err matches target in its chain.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
