package app

import (
	"github.com/casbin/casbin/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/binar-final-project-kelompok7/course-in/domain"
	"github.com/binar-final-project-kelompok7/course-in/internal/config"
	"github.com/binar-final-project-kelompok7/course-in/internal/infrastructure/auth"
	"github.com/binar-final-project-kelompok7/course-in/internal/infrastructure/database"
	"github.com/binar-final-project-kelompok7/course-in/internal/infrastructure/notifications"
	"github.com/binar-final-project-kelompok7/course-in/internal/infrastructure/repositories"
	"github.com/binar-final-project-kelompok7/course-in/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config

	DB          *gorm.DB
	RedisClient *redis.Client
	Enforcer    *casbin.Enforcer

	AccountRepo domain.AccountRepository
	OtpRepo     domain.OtpRepository
	ResetRepo   domain.ResetTokenRepository

	Hasher    domain.SecretHasher
	TokenSvc  domain.TokenService
	Notifier  domain.Notifier
	OtpSvc    domain.OtpService
	ResetSvc  domain.ResetService
	AuthSvc   domain.AuthService
	PolicySvc domain.PolicyService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	gdb, err := database.Open(cfg.DSN)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(gdb); err != nil {
		return nil, err
	}
	c.DB = gdb

	cas, err := auth.NewCasbinService(gdb, cfg.CasbinModelPath)
	if err != nil {
		return nil, err
	}
	c.Enforcer = cas.E

	c.RedisClient = database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB).Client

	notifier, err := notifications.NewMailService(cfg.MailHost, cfg.MailPort, cfg.MailUsername, cfg.MailPassword, cfg.MailFrom)
	if err != nil {
		return nil, err
	}
	c.Notifier = notifier

	c.initRepositories()
	c.initServices()

	return c, nil
}

func (c *Container) initRepositories() {
	c.AccountRepo = repositories.NewAccountRepository(c.DB)
	c.OtpRepo = repositories.NewOtpRepository(c.RedisClient)
	c.ResetRepo = repositories.NewResetTokenRepository(c.RedisClient)
}

func (c *Container) initServices() {
	c.Hasher = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(c.Config.JWTSecret, c.Config.JWTIssuer, c.Config.AccessTTL)
	c.OtpSvc = services.NewOTPService(c.OtpRepo, c.Notifier, c.Config.OtpTTL)
	c.ResetSvc = services.NewResetService(c.AccountRepo, c.ResetRepo, c.Hasher, c.Notifier, c.Config.ResetURL, c.Config.ResetTTL)
	c.AuthSvc = services.NewAuthService(c.AccountRepo, c.OtpSvc, c.ResetSvc, c.Hasher, c.TokenSvc)
	c.PolicySvc = services.NewPolicyService(c.Enforcer)
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
