package domain

import "context"

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	SetActiveToken(ctx context.Context, userID uint, token string) error
	Delete(ctx context.Context, userID uint) error
}

// AuthService defines authentication business logic
type AuthService interface {
	Register(ctx context.Context, email, password, role string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	VerifySession(ctx context.Context, token string) (*User, error)
	Logout(ctx context.Context, token string) error
	DeleteAccount(ctx context.Context, token string) error
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines token operations
type TokenService interface {
	Generate(userID uint, role string) (string, error)
	Validate(token string) (*TokenClaims, error)
	TTLSeconds() int64
}

// LoginLimiter gates login attempts per identifier with a lockout window
type LoginLimiter interface {
	Allow(ctx context.Context, identifier string) (*LockoutStatus, error)
	RecordFailure(ctx context.Context, identifier string) error
	RecordSuccess(ctx context.Context, identifier string) error
}

// AuditLogger defines operations for audit logging
type AuditLogger interface {
	LogEvent(ctx context.Context, event *AuditEvent)
}
