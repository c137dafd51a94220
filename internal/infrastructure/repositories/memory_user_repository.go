package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/Voctor98/TechSolutionsApp/domain"
)

// MemoryUserRepository implements domain.UserRepository with an in-process
// map. Used in tests and for local runs without Postgres. The mutex covers
// the whole existence-check-then-insert, so concurrent registrations of the
// same email resolve to exactly one success.
type MemoryUserRepository struct {
	mu      sync.Mutex
	byEmail map[string]*domain.User
	byID    map[uint]*domain.User
	nextID  uint
}

// NewMemoryUserRepository creates an empty in-memory user repository
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		byEmail: make(map[string]*domain.User),
		byID:    make(map[uint]*domain.User),
		nextID:  1,
	}
}

// Create implements domain.UserRepository
func (r *MemoryUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return domain.ErrUserAlreadyExists
	}

	stored := *user
	stored.ID = r.nextID
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	r.nextID++ // IDs are never reused, even after deletion

	r.byEmail[stored.Email] = &stored
	r.byID[stored.ID] = &stored

	user.ID = stored.ID
	return nil
}

// FindByEmail implements domain.UserRepository
func (r *MemoryUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copy := *user
	return &copy, nil
}

// FindByID implements domain.UserRepository
func (r *MemoryUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copy := *user
	return &copy, nil
}

// SetActiveToken implements domain.UserRepository
func (r *MemoryUserRepository) SetActiveToken(ctx context.Context, userID uint, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	user.ActiveSessionToken = token
	user.UpdatedAt = time.Now()
	return nil
}

// Delete implements domain.UserRepository
func (r *MemoryUserRepository) Delete(ctx context.Context, userID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	delete(r.byEmail, user.Email)
	delete(r.byID, userID)
	return nil
}
