package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

const validConfig = `
app:
  port: 3000
  gin_mode: test
database:
  dsn: "postgres://auth:pw@localhost:5432/authdb"
redis:
  addr: "localhost:6379"
  db: 2
jwt:
  secret: "unit-test-secret"
  issuer: "authsvc-test"
  ttl: "720h"
password:
  min_length: 10
  bcrypt_cost: 12
login_limits:
  max_attempts: 7
  lockout_duration: "45s"
issue_token_on_register: true
`

func TestLoad(t *testing.T) {
	t.Setenv("AUTH_CONFIG_PATH", writeConfigFile(t, validConfig))
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("JWT_SECRET", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "3000" {
		t.Errorf("expected port 3000, got %s", cfg.Port)
	}
	if cfg.TokenTTL != 720*time.Hour {
		t.Errorf("expected 720h TTL, got %v", cfg.TokenTTL)
	}
	if cfg.PasswordMinLength != 10 {
		t.Errorf("expected min length 10, got %d", cfg.PasswordMinLength)
	}
	if cfg.BcryptCost != 12 {
		t.Errorf("expected bcrypt cost 12, got %d", cfg.BcryptCost)
	}
	if cfg.LoginMaxAttempts != 7 {
		t.Errorf("expected 7 attempts, got %d", cfg.LoginMaxAttempts)
	}
	if cfg.LockoutDuration != 45*time.Second {
		t.Errorf("expected 45s lockout, got %v", cfg.LockoutDuration)
	}
	if !cfg.IssueTokenOnRegister {
		t.Error("expected issue_token_on_register to be true")
	}
	if cfg.RedisDB != 2 {
		t.Errorf("expected redis db 2, got %d", cfg.RedisDB)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("AUTH_CONFIG_PATH", writeConfigFile(t, validConfig))
	t.Setenv("DATABASE_DSN", "postgres://other:pw@db.internal:5432/authdb")
	t.Setenv("JWT_SECRET", "from-environment")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.DSN != "postgres://other:pw@db.internal:5432/authdb" {
		t.Errorf("expected env DSN to win, got %s", cfg.DSN)
	}
	if cfg.JWTSecret != "from-environment" {
		t.Errorf("expected env secret to win, got %s", cfg.JWTSecret)
	}
}

func TestLoad_Defaults(t *testing.T) {
	minimal := `
app:
  port: 3000
jwt:
  secret: "s"
  ttl: "1h"
login_limits:
  lockout_duration: "30s"
`
	t.Setenv("AUTH_CONFIG_PATH", writeConfigFile(t, minimal))
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("JWT_SECRET", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.PasswordMinLength != 8 {
		t.Errorf("expected default min length 8, got %d", cfg.PasswordMinLength)
	}
	if cfg.LoginMaxAttempts != 5 {
		t.Errorf("expected default threshold 5, got %d", cfg.LoginMaxAttempts)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{
			name: "missing secret",
			contents: `
app:
  port: 3000
jwt:
  ttl: "1h"
login_limits:
  lockout_duration: "30s"
`,
		},
		{
			name: "bad ttl",
			contents: `
app:
  port: 3000
jwt:
  secret: "s"
  ttl: "30 days"
login_limits:
  lockout_duration: "30s"
`,
		},
		{
			name: "bad lockout duration",
			contents: `
app:
  port: 3000
jwt:
  secret: "s"
  ttl: "1h"
login_limits:
  lockout_duration: "soon"
`,
		},
		{
			name:     "not yaml",
			contents: "{{{{",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("AUTH_CONFIG_PATH", writeConfigFile(t, tt.contents))
			t.Setenv("JWT_SECRET", "")
			if _, err := Load(); err == nil {
				t.Error("expected Load to fail")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("AUTH_CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yml"))
	if _, err := Load(); err == nil {
		t.Error("expected Load to fail for a missing file")
	}
}
