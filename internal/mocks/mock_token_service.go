package mocks

import (
	"fmt"
	"time"

	"github.com/Voctor98/TechSolutionsApp/domain"
)

// MockTokenService implements domain.TokenService interface for testing
type MockTokenService struct {
	GenerateFunc   func(userID uint, role string) (string, error)
	ValidateFunc   func(token string) (*domain.TokenClaims, error)
	TTLSecondsFunc func() int64

	issued int
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// Generate creates a token
func (m *MockTokenService) Generate(userID uint, role string) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, role)
	}
	// Default behavior: unique fake token per call
	m.issued++
	return fmt.Sprintf("token_%d_%s_%d", userID, role, m.issued), nil
}

// Validate parses a token
func (m *MockTokenService) Validate(token string) (*domain.TokenClaims, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(token)
	}
	// Default behavior: reject everything
	return nil, domain.ErrTokenInvalid
}

// TTLSeconds reports the configured token lifetime
func (m *MockTokenService) TTLSeconds() int64 {
	if m.TTLSecondsFunc != nil {
		return m.TTLSecondsFunc()
	}
	return int64((720 * time.Hour).Seconds())
}
