package mocks

import (
	"context"

	"github.com/Voctor98/TechSolutionsApp/domain"
)

// MockLoginLimiter implements domain.LoginLimiter interface for testing
type MockLoginLimiter struct {
	AllowFunc         func(ctx context.Context, identifier string) (*domain.LockoutStatus, error)
	RecordFailureFunc func(ctx context.Context, identifier string) error
	RecordSuccessFunc func(ctx context.Context, identifier string) error

	Failures  []string
	Successes []string
}

// NewMockLoginLimiter creates a new MockLoginLimiter with default behaviors
func NewMockLoginLimiter() *MockLoginLimiter {
	return &MockLoginLimiter{}
}

// Allow checks whether the identifier may attempt a login
func (m *MockLoginLimiter) Allow(ctx context.Context, identifier string) (*domain.LockoutStatus, error) {
	if m.AllowFunc != nil {
		return m.AllowFunc(ctx, identifier)
	}
	// Default behavior: open
	return &domain.LockoutStatus{Allowed: true}, nil
}

// RecordFailure records a failed attempt
func (m *MockLoginLimiter) RecordFailure(ctx context.Context, identifier string) error {
	if m.RecordFailureFunc != nil {
		return m.RecordFailureFunc(ctx, identifier)
	}
	m.Failures = append(m.Failures, identifier)
	return nil
}

// RecordSuccess resets the identifier's state
func (m *MockLoginLimiter) RecordSuccess(ctx context.Context, identifier string) error {
	if m.RecordSuccessFunc != nil {
		return m.RecordSuccessFunc(ctx, identifier)
	}
	m.Successes = append(m.Successes, identifier)
	return nil
}
