package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Voctor98/TechSolutionsApp/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags).
// The unique index on email makes duplicate detection atomic at the
// database, so concurrent registrations cannot both succeed.
type DBUser struct {
	ID                 uint   `gorm:"primaryKey"`
	Email              string `gorm:"uniqueIndex;size:255"`
	PasswordHash       string `gorm:"column:password"`
	Role               string `gorm:"index;size:64"`
	ActiveSessionToken string `gorm:"column:session_token;size:512"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrUserAlreadyExists
		}
		return err
	}
	user.ID = dbUser.ID
	return nil
}

// FindByEmail implements domain.UserRepository. Callers normalize the email
// to lower case, which makes the unique index effectively case-insensitive.
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// SetActiveToken implements domain.UserRepository. An empty token clears
// the active session.
func (r *UserRepositoryImpl) SetActiveToken(ctx context.Context, userID uint, token string) error {
	result := r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", userID).Update("session_token", token)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Delete implements domain.UserRepository
func (r *UserRepositoryImpl) Delete(ctx context.Context, userID uint) error {
	result := r.db.WithContext(ctx).Where("id = ?", userID).Delete(&DBUser{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// domainToDB converts domain user to database user
func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:                 user.ID,
		Email:              user.Email,
		PasswordHash:       user.PasswordHash,
		Role:               user.Role,
		ActiveSessionToken: user.ActiveSessionToken,
	}
}

// dbToDomain converts database user to domain user
func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:                 dbUser.ID,
		Email:              dbUser.Email,
		PasswordHash:       dbUser.PasswordHash,
		Role:               dbUser.Role,
		ActiveSessionToken: dbUser.ActiveSessionToken,
		CreatedAt:          dbUser.CreatedAt,
		UpdatedAt:          dbUser.UpdatedAt,
	}
}
