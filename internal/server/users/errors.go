package users

import (
	"errors"
	"fmt"
)

// Errors rendered to callers. Their messages are part of the public contract.
var (
	// ErrDuplicateUser matches any *DuplicateUserError
	ErrDuplicateUser = errors.New("username already exists")

	// ErrAuthenticationFailed matches any *AuthError
	ErrAuthenticationFailed = errors.New("Incorrect account details")

	// ErrInvalidToken is returned when no user holds the token
	ErrInvalidToken = errors.New("Invalid token")
)

// DuplicateUserError is returned by Register for a taken username.
type DuplicateUserError struct {
	Username string
}

func (e *DuplicateUserError) Error() string {
	return fmt.Sprintf("Username %s already exists", e.Username)
}

// Is makes errors.Is(err, ErrDuplicateUser) hold.
func (e *DuplicateUserError) Is(target error) bool {
	return target == ErrDuplicateUser
}

// FailureReason classifies an authentication failure internally.
type FailureReason string

const (
	ReasonNotFound FailureReason = "not_found"
	ReasonMismatch FailureReason = "mismatch"
	ReasonBackend  FailureReason = "backend"
)

// AuthError is returned by Authenticate for every failure.
// Error() is always the generic message so callers can't tell an unknown
// username from a wrong password; Reason and the wrapped cause are for logs.
type AuthError struct {
	Err    error
	Reason FailureReason
}

func (e *AuthError) Error() string {
	return ErrAuthenticationFailed.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrAuthenticationFailed) hold.
func (e *AuthError) Is(target error) bool {
	return target == ErrAuthenticationFailed
}
