package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/Voctor98/TechSolutionsApp/domain"
)

// PasswordServiceImpl implements domain.PasswordService
type PasswordServiceImpl struct {
	cost int
}

// NewPasswordService creates a new password service. A cost of 0 falls back
// to bcrypt.DefaultCost.
func NewPasswordService(cost int) domain.PasswordService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordServiceImpl{cost: cost}
}

// Hash implements domain.PasswordService. The bcrypt output embeds salt and
// cost, so Verify needs no auxiliary parameters.
func (p *PasswordServiceImpl) Hash(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// Verify implements domain.PasswordService
func (p *PasswordServiceImpl) Verify(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
