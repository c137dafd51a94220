package domain

import (
	"errors"
	"fmt"
)

// Authentication errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrAccountLocked      = errors.New("account temporarily locked")
	ErrWeakPassword       = errors.New("password does not meet policy")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// AccountLockedError carries how long the caller must wait before the next
// attempt. It matches ErrAccountLocked through errors.Is.
type AccountLockedError struct {
	RetryAfter int64 // seconds
}

func (e *AccountLockedError) Error() string {
	return fmt.Sprintf("account temporarily locked, retry in %ds", e.RetryAfter)
}

func (e *AccountLockedError) Is(target error) bool {
	return target == ErrAccountLocked
}

// WeakPasswordError names the policy rule the password failed. It matches
// ErrWeakPassword through errors.Is.
type WeakPasswordError struct {
	Rule string
}

func (e *WeakPasswordError) Error() string {
	return "weak password: " + e.Rule
}

func (e *WeakPasswordError) Is(target error) bool {
	return target == ErrWeakPassword
}
