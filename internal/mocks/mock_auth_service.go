package mocks

import (
	"context"

	"github.com/Voctor98/TechSolutionsApp/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	RegisterFunc      func(ctx context.Context, email, password, role string) (*domain.AuthResult, error)
	LoginFunc         func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	VerifySessionFunc func(ctx context.Context, token string) (*domain.User, error)
	LogoutFunc        func(ctx context.Context, token string) error
	DeleteAccountFunc func(ctx context.Context, token string) error
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Register registers a new user
func (m *MockAuthService) Register(ctx context.Context, email, password, role string) (*domain.AuthResult, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, email, password, role)
	}
	return &domain.AuthResult{User: &domain.User{ID: 1, Email: email, Role: role}}, nil
}

// Login authenticates a user
func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return nil, domain.ErrInvalidCredentials
}

// VerifySession validates a session token
func (m *MockAuthService) VerifySession(ctx context.Context, token string) (*domain.User, error) {
	if m.VerifySessionFunc != nil {
		return m.VerifySessionFunc(ctx, token)
	}
	return nil, domain.ErrTokenInvalid
}

// Logout clears the active session
func (m *MockAuthService) Logout(ctx context.Context, token string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, token)
	}
	return nil
}

// DeleteAccount removes the acting user's account
func (m *MockAuthService) DeleteAccount(ctx context.Context, token string) error {
	if m.DeleteAccountFunc != nil {
		return m.DeleteAccountFunc(ctx, token)
	}
	return nil
}
