package domain

import "time"

// User represents a registered account
type User struct {
	ID                 uint
	Email              string
	PasswordHash       string
	Role               string
	ActiveSessionToken string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// AuthRequest represents authentication credentials
type AuthRequest struct {
	Email    string
	Password string
}

// AuthResult represents authentication outcome
type AuthResult struct {
	User      *User
	Token     string
	ExpiresIn int64
}

// TokenClaims represents session token claims
type TokenClaims struct {
	UserID    uint   `json:"user_id"`
	Role      string `json:"role"`
	JTI       string `json:"jti,omitempty"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// LockoutStatus reports the limiter decision for a login identifier
type LockoutStatus struct {
	Allowed          bool
	SecondsRemaining int64
}
