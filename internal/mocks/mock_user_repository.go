package mocks

import (
	"context"

	"github.com/Voctor98/TechSolutionsApp/domain"
)

// MockUserRepository implements domain.UserRepository interface for testing
type MockUserRepository struct {
	CreateFunc         func(ctx context.Context, user *domain.User) error
	FindByEmailFunc    func(ctx context.Context, email string) (*domain.User, error)
	FindByIDFunc       func(ctx context.Context, id uint) (*domain.User, error)
	SetActiveTokenFunc func(ctx context.Context, userID uint, token string) error
	DeleteFunc         func(ctx context.Context, userID uint) error
}

// NewMockUserRepository creates a new MockUserRepository with default behaviors
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

// Create creates a new user
func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	// Default behavior: success
	return nil
}

// FindByEmail finds a user by email
func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// FindByID finds a user by ID
func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// SetActiveToken stores the user's active session token
func (m *MockUserRepository) SetActiveToken(ctx context.Context, userID uint, token string) error {
	if m.SetActiveTokenFunc != nil {
		return m.SetActiveTokenFunc(ctx, userID, token)
	}
	// Default behavior: success
	return nil
}

// Delete removes a user
func (m *MockUserRepository) Delete(ctx context.Context, userID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID)
	}
	// Default behavior: success
	return nil
}
