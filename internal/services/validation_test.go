package services

import (
	"errors"
	"testing"

	"github.com/Voctor98/TechSolutionsApp/domain"
)

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"u1@test.com", true},
		{"first.last@example.co", true},
		{"under_score@mail-host.org", true},
		{"user@sub.domain.io", true},
		{"", false},
		{"plainaddress", false},
		{"@no-local.com", false},
		{"user@", false},
		{"user@domain", false},
		{"user@domain.toolongtld", false},
		{"spaces in@address.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			if got := validEmail(tt.email); got != tt.valid {
				t.Errorf("validEmail(%q) = %v, want %v", tt.email, got, tt.valid)
			}
		})
	}
}

func TestCheckPasswordPolicy(t *testing.T) {
	tests := []struct {
		name         string
		password     string
		expectedRule string
	}{
		{name: "acceptable password", password: "Str0ng!Pass"},
		{name: "too short", password: "S1!a", expectedRule: "must be at least 8 characters"},
		{name: "no uppercase", password: "weakpass1!", expectedRule: "must contain an uppercase letter"},
		{name: "no lowercase", password: "WEAKPASS1!", expectedRule: "must contain a lowercase letter"},
		{name: "no digit", password: "WeakPass!!", expectedRule: "must contain a digit"},
		{name: "no special character", password: "WeakPass12", expectedRule: "must contain a special character"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkPasswordPolicy(tt.password, 8)

			if tt.expectedRule == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			if !errors.Is(err, domain.ErrWeakPassword) {
				t.Fatalf("expected ErrWeakPassword, got %v", err)
			}
			var weakErr *domain.WeakPasswordError
			if !errors.As(err, &weakErr) {
				t.Fatalf("expected *WeakPasswordError, got %T", err)
			}
			if weakErr.Rule != tt.expectedRule {
				t.Errorf("expected rule %q, got %q", tt.expectedRule, weakErr.Rule)
			}
		})
	}
}

func TestCheckPasswordPolicy_MinLengthConfigurable(t *testing.T) {
	err := checkPasswordPolicy("Sh0rt!Pw90x", 12)
	if !errors.Is(err, domain.ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword for 11 chars against minimum 12, got %v", err)
	}

	if err := checkPasswordPolicy("L0ng!Enough1", 12); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
