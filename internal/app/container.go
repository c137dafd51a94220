package app

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Voctor98/TechSolutionsApp/domain"
	"github.com/Voctor98/TechSolutionsApp/internal/config"
	"github.com/Voctor98/TechSolutionsApp/internal/infrastructure/audit"
	"github.com/Voctor98/TechSolutionsApp/internal/infrastructure/auth"
	"github.com/Voctor98/TechSolutionsApp/internal/infrastructure/database"
	"github.com/Voctor98/TechSolutionsApp/internal/infrastructure/repositories"
	"github.com/Voctor98/TechSolutionsApp/internal/services"
)

// Container holds all dependencies
type Container struct {
	// Config
	Config *config.Config

	// Infrastructure
	DB          *gorm.DB
	RedisClient *redis.Client

	// Repositories
	UserRepo domain.UserRepository

	// Services
	PasswordSvc domain.PasswordService
	TokenSvc    domain.TokenService
	Limiter     domain.LoginLimiter
	Audit       domain.AuditLogger
	AuthSvc     domain.AuthService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	container := &Container{Config: cfg}

	if err := container.initDatabase(); err != nil {
		return nil, err
	}
	container.initRedis()
	container.initServices()

	return container, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(db); err != nil {
		return err
	}
	c.DB = db
	return nil
}

func (c *Container) initRedis() {
	c.RedisClient = database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB).Client
}

func (c *Container) initServices() {
	c.UserRepo = repositories.NewUserRepository(c.DB)
	c.PasswordSvc = auth.NewPasswordService(c.Config.BcryptCost)
	c.TokenSvc = auth.NewJWTService(c.Config.JWTSecret, c.Config.JWTIssuer, c.Config.TokenTTL)
	c.Limiter = services.NewLoginLimiter(c.RedisClient, services.LimiterConfig{
		MaxAttempts:     c.Config.LoginMaxAttempts,
		LockoutDuration: c.Config.LockoutDuration,
	})
	c.Audit = audit.NewSlogAuditLogger(nil)

	c.AuthSvc = services.NewAuthService(
		c.UserRepo,
		c.PasswordSvc,
		c.TokenSvc,
		c.Limiter,
		c.Audit,
		services.AuthConfig{
			PasswordMinLength:    c.Config.PasswordMinLength,
			IssueTokenOnRegister: c.Config.IssueTokenOnRegister,
		},
	)
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
