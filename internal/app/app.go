package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Juls010/bluvi-backend/internal/config"
	httpx "github.com/Juls010/bluvi-backend/internal/http"
	"github.com/Juls010/bluvi-backend/internal/http/handlers"
	"github.com/Juls010/bluvi-backend/internal/http/middleware"
	"github.com/Juls010/bluvi-backend/internal/infrastructure/auth"
	"github.com/Juls010/bluvi-backend/internal/infrastructure/database"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	gdb, err := database.Open(cfg.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(gdb); err != nil {
		return err
	}

	cas, err := auth.NewCasbinService(gdb, cfg.CasbinModelPath)
	if err != nil {
		return err
	}

	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB).Client
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return err
	}

	container := NewContainer(cfg, gdb, rdb, cas)

	authH := handlers.NewAuthHandlers(container.AuthSvc)
	userH := handlers.NewUserHandlers(container.ProfileSvc)
	catalogH := handlers.NewCatalogHandlers(container.CatalogRepo)
	policyH := handlers.NewPolicyHandlers(container.PolicySvc)

	jwtMW := middleware.NewAuthMW(container.TokenSvc)
	casbinMW := middleware.NewCasbinMW(cas.E)
	rateLimit := middleware.NewRateLimiter(container.RateLimit, cfg.RateLimitBurst)

	r := httpx.BuildRouter(authH, userH, catalogH, policyH, jwtMW, casbinMW, rateLimit)

	if len(container.PolicySvc.GetPolicies()) == 0 {
		seed := [][3]string{
			{"role_admin", "/admin/*", "(GET|POST|PUT|DELETE)"},
			{"role_admin", "/api/users/*", "GET"},
			{"role_user", "/api/users/profile", "GET"},
			{"role_user", "/api/users/explore", "GET"},
		}
		for _, p := range seed {
			if err := container.PolicySvc.AddPolicy(p[0], p[1], p[2]); err != nil {
				return err
			}
		}
		log.Println("casbin: seeded default policies")
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
