package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Voctor98/TechSolutionsApp/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	limiter     domain.LoginLimiter
	audit       domain.AuditLogger
	config      AuthConfig
	padHash     string
}

// fallbackPadHash is a valid bcrypt hash (cost 10) used as the timing pad
// when the hasher cannot produce one at construction time.
const fallbackPadHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthConfig holds the tunable parts of the authentication flow
type AuthConfig struct {
	PasswordMinLength    int
	IssueTokenOnRegister bool
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	limiter domain.LoginLimiter,
	audit domain.AuditLogger,
	config AuthConfig,
) domain.AuthService {
	if config.PasswordMinLength <= 0 {
		config.PasswordMinLength = 8
	}

	// A login against an unknown email must cost a real hash verification,
	// the same as a wrong password does. The pad is hashed once here so
	// every such login verifies against it at the configured cost.
	padHash, err := passwordSvc.Hash("login-timing-pad")
	if err != nil {
		padHash = fallbackPadHash
	}

	return &AuthServiceImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		limiter:     limiter,
		audit:       audit,
		config:      config,
		padHash:     padHash,
	}
}

// Register implements domain.AuthService
func (s *AuthServiceImpl) Register(ctx context.Context, email, password, role string) (*domain.AuthResult, error) {
	email = normalizeEmail(email)
	if !validEmail(email) {
		return nil, domain.ErrInvalidEmail
	}
	if err := checkPasswordPolicy(password, s.config.PasswordMinLength); err != nil {
		return nil, err
	}
	if role == "" {
		role = "user"
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         role,
	}

	// The repository enforces email uniqueness atomically, so a concurrent
	// registration of the same address surfaces here as ErrUserAlreadyExists.
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			return nil, domain.ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	result := &domain.AuthResult{User: user}
	if s.config.IssueTokenOnRegister {
		token, err := s.issueSession(ctx, user)
		if err != nil {
			return nil, err
		}
		result.Token = token
		result.ExpiresIn = s.tokenSvc.TTLSeconds()
	}

	s.audit.LogEvent(ctx, domain.NewAuditEvent(domain.UserRegistrationEvent, user.ID).WithEmail(email))
	return result, nil
}

// Login implements domain.AuthService
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	email = normalizeEmail(email)

	// Lockout check comes first and fails fast, before the store or the
	// hasher can leak whether the account exists.
	status, err := s.limiter.Allow(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check login limiter: %w", err)
	}
	if !status.Allowed {
		s.audit.LogEvent(ctx, domain.NewAuditEvent(domain.UserLockoutEvent, 0).WithEmail(email).WithError(domain.ErrAccountLocked))
		return nil, &domain.AccountLockedError{RetryAfter: status.SecondsRemaining}
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Burn the same verification cost the wrong-password path
			// pays, so response time does not reveal whether the
			// account exists.
			s.passwordSvc.Verify(s.padHash, password)
			return nil, s.failLogin(ctx, email)
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, s.failLogin(ctx, email)
	}

	if err := s.limiter.RecordSuccess(ctx, email); err != nil {
		return nil, fmt.Errorf("failed to reset login limiter: %w", err)
	}

	token, err := s.issueSession(ctx, user)
	if err != nil {
		return nil, err
	}

	s.audit.LogEvent(ctx, domain.NewAuditEvent(domain.UserLoginEvent, user.ID).WithEmail(email))
	return &domain.AuthResult{
		User:      user,
		Token:     token,
		ExpiresIn: s.tokenSvc.TTLSeconds(),
	}, nil
}

// failLogin records the failed attempt and returns the deliberately
// undifferentiated credentials error. "No such user" and "wrong password"
// must be indistinguishable to the caller.
func (s *AuthServiceImpl) failLogin(ctx context.Context, email string) error {
	if err := s.limiter.RecordFailure(ctx, email); err != nil {
		return fmt.Errorf("failed to record login failure: %w", err)
	}
	s.audit.LogEvent(ctx, domain.NewAuditEvent(domain.UserLoginFailureEvent, 0).WithEmail(email).WithError(domain.ErrInvalidCredentials))
	return domain.ErrInvalidCredentials
}

// issueSession mints a token and persists it as the user's single active
// session. The previous token, if any, stops verifying from here on.
func (s *AuthServiceImpl) issueSession(ctx context.Context, user *domain.User) (string, error) {
	token, err := s.tokenSvc.Generate(user.ID, user.Role)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	if err := s.userRepo.SetActiveToken(ctx, user.ID, token); err != nil {
		return "", fmt.Errorf("failed to persist session token: %w", err)
	}
	user.ActiveSessionToken = token
	return token, nil
}

// VerifySession implements domain.AuthService. Every failure mode (bad
// signature, expiry, unknown user, revoked by replacement) collapses into
// ErrTokenInvalid so the token cannot be used as an oracle.
func (s *AuthServiceImpl) VerifySession(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokenSvc.Validate(token)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}

	if user.ActiveSessionToken != token {
		return nil, domain.ErrTokenInvalid
	}

	return user, nil
}

// Logout implements domain.AuthService
func (s *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	user, err := s.VerifySession(ctx, token)
	if err != nil {
		return err
	}
	if err := s.userRepo.SetActiveToken(ctx, user.ID, ""); err != nil {
		return fmt.Errorf("failed to clear session token: %w", err)
	}
	s.audit.LogEvent(ctx, domain.NewAuditEvent(domain.UserLogoutEvent, user.ID).WithEmail(user.Email))
	return nil
}

// DeleteAccount implements domain.AuthService. The token identifies the
// acting user; deletion of an already-removed account is an error, not a
// no-op.
func (s *AuthServiceImpl) DeleteAccount(ctx context.Context, token string) error {
	user, err := s.VerifySession(ctx, token)
	if err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, user.ID); err != nil {
		return err
	}
	s.audit.LogEvent(ctx, domain.NewAuditEvent(domain.UserDeletionEvent, user.ID).WithEmail(user.Email))
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
