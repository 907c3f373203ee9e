package app

import (
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/Juls010/bluvi-backend/domain"
	"github.com/Juls010/bluvi-backend/internal/config"
	"github.com/Juls010/bluvi-backend/internal/infrastructure/auth"
	"github.com/Juls010/bluvi-backend/internal/infrastructure/notifications"
	"github.com/Juls010/bluvi-backend/internal/infrastructure/repositories"
	"github.com/Juls010/bluvi-backend/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config

	DB          *gorm.DB
	RedisClient *redis.Client

	UserRepo    domain.UserRepository
	CatalogRepo domain.CatalogRepository

	PasswordSvc domain.PasswordService
	TokenSvc    domain.TokenService
	Mailer      domain.Mailer
	OTPSvc      domain.OTPService
	AuthSvc     domain.AuthService
	ProfileSvc  domain.ProfileService
	PolicySvc   domain.PolicyService

	RateLimit rate.Limit
}

// NewContainer wires every dependency once; nothing reads ambient globals.
func NewContainer(cfg *config.Config, gdb *gorm.DB, rdb *redis.Client, cas *auth.CasbinService) *Container {
	userRepo := repositories.NewUserRepository(gdb)
	catalogRepo := repositories.NewCatalogRepository(gdb)

	passwordSvc := auth.NewPasswordService()
	tokenSvc := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)
	mailer := notifications.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)

	otpSvc := services.NewOTPService(rdb, services.OTPConfig{
		TTL:          cfg.OTPTTL,
		ResendWindow: cfg.OTPResendWindow,
	})

	authSvc := services.NewAuthService(userRepo, passwordSvc, tokenSvc, otpSvc, mailer, cfg.TokenTTL)
	profileSvc := services.NewProfileService(userRepo)
	policySvc := services.NewPolicyService(cas.E)

	return &Container{
		Config:      cfg,
		DB:          gdb,
		RedisClient: rdb,
		UserRepo:    userRepo,
		CatalogRepo: catalogRepo,
		PasswordSvc: passwordSvc,
		TokenSvc:    tokenSvc,
		Mailer:      mailer,
		OTPSvc:      otpSvc,
		AuthSvc:     authSvc,
		ProfileSvc:  profileSvc,
		PolicySvc:   policySvc,
		RateLimit:   rate.Limit(cfg.RateLimitPerSec),
	}
}
