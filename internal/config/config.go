package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret string `yaml:"secret"`
	Issuer string `yaml:"issuer"`
	TTL    string `yaml:"ttl"`
}

type PasswordConfig struct {
	MinLength  int `yaml:"min_length"`
	BcryptCost int `yaml:"bcrypt_cost"`
}

type LoginLimitConfig struct {
	MaxAttempts     int    `yaml:"max_attempts"`
	LockoutDuration string `yaml:"lockout_duration"`
}

type ConfigFile struct {
	App                  AppConfig        `yaml:"app"`
	Database             DatabaseConfig   `yaml:"database"`
	Redis                RedisConfig      `yaml:"redis"`
	JWT                  JWTConfig        `yaml:"jwt"`
	Password             PasswordConfig   `yaml:"password"`
	LoginLimits          LoginLimitConfig `yaml:"login_limits"`
	IssueTokenOnRegister bool             `yaml:"issue_token_on_register"`
}

type Config struct {
	Port                 string
	GinMode              string
	DSN                  string
	RedisAddr            string
	RedisPassword        string
	RedisDB              int
	JWTSecret            string
	JWTIssuer            string
	TokenTTL             time.Duration
	PasswordMinLength    int
	BcryptCost           int
	LoginMaxAttempts     int
	LockoutDuration      time.Duration
	IssueTokenOnRegister bool
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() (*Config, error) {
	path := env("AUTH_CONFIG_PATH", "config/config.yml")
	configFile, err := loadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	tokenTTL, err := time.ParseDuration(configFile.JWT.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT TTL: %w", err)
	}

	lockout, err := time.ParseDuration(configFile.LoginLimits.LockoutDuration)
	if err != nil {
		return nil, fmt.Errorf("invalid lockout duration: %w", err)
	}

	cfg := &Config{
		Port:                 fmt.Sprintf("%d", configFile.App.Port),
		GinMode:              configFile.App.GinMode,
		DSN:                  env("DATABASE_DSN", configFile.Database.DSN),
		RedisAddr:            configFile.Redis.Addr,
		RedisPassword:        configFile.Redis.Password,
		RedisDB:              configFile.Redis.DB,
		JWTSecret:            env("JWT_SECRET", configFile.JWT.Secret),
		JWTIssuer:            configFile.JWT.Issuer,
		TokenTTL:             tokenTTL,
		PasswordMinLength:    configFile.Password.MinLength,
		BcryptCost:           configFile.Password.BcryptCost,
		LoginMaxAttempts:     configFile.LoginLimits.MaxAttempts,
		LockoutDuration:      lockout,
		IssueTokenOnRegister: configFile.IssueTokenOnRegister,
	}

	return cfg, cfg.validate()
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("jwt secret must not be empty")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("jwt ttl must be positive")
	}
	if c.PasswordMinLength <= 0 {
		c.PasswordMinLength = 8
	}
	if c.LoginMaxAttempts <= 0 {
		c.LoginMaxAttempts = 5
	}
	if c.LockoutDuration <= 0 {
		c.LockoutDuration = 30 * time.Second
	}
	return nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
