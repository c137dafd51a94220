package services

import (
	"fmt"
	"regexp"
	"unicode"

	"github.com/Voctor98/TechSolutionsApp/domain"
)

// emailPattern matches the format the mobile clients validate against.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,6}$`)

func validEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// checkPasswordPolicy enforces the complexity rules: minimum length plus at
// least one upper-case letter, one lower-case letter, one digit and one
// special character. The returned error names the first rule that failed.
func checkPasswordPolicy(password string, minLength int) error {
	if len(password) < minLength {
		return &domain.WeakPasswordError{Rule: fmt.Sprintf("must be at least %d characters", minLength)}
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	switch {
	case !hasUpper:
		return &domain.WeakPasswordError{Rule: "must contain an uppercase letter"}
	case !hasLower:
		return &domain.WeakPasswordError{Rule: "must contain a lowercase letter"}
	case !hasDigit:
		return &domain.WeakPasswordError{Rule: "must contain a digit"}
	case !hasSpecial:
		return &domain.WeakPasswordError{Rule: "must contain a special character"}
	}
	return nil
}
