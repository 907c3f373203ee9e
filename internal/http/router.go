package httpx

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Juls010/bluvi-backend/internal/http/handlers"
	"github.com/Juls010/bluvi-backend/internal/http/middleware"
)

// RegisterValidators installs custom binding rules on gin's validator engine.
// "adult" accepts a YYYY-MM-DD birth date at least 18 years in the past.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("adult", func(fl validator.FieldLevel) bool {
			birth, err := time.Parse("2006-01-02", fl.Field().String())
			if err != nil {
				return false
			}
			return !time.Now().Before(birth.AddDate(18, 0, 0))
		})
	}
}

func BuildRouter(
	ah *handlers.AuthHandlers,
	uh *handlers.UserHandlers,
	ch *handlers.CatalogHandlers,
	ph *handlers.PolicyHandlers,
	jwtmw *middleware.AuthMW,
	cb *middleware.CasbinMW,
	rl *middleware.RateLimiter,
) *gin.Engine {
	RegisterValidators()

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/api/auth").Use(rl.Limit())
	auth.POST("/check-email", ah.CheckEmail)
	auth.POST("/register", ah.Register)
	auth.POST("/verify-email", ah.VerifyEmail)
	auth.POST("/login", ah.Login)
	auth.POST("/resend-code", ah.ResendCode)

	r.GET("/api/interests", ch.Interests)
	r.GET("/api/catalog/register-metadata", ch.RegisterMetadata)

	users := r.Group("/api/users").Use(jwtmw.WithJWT(), cb.Enforce())
	users.GET("/profile", uh.Profile)
	users.GET("/explore", uh.Explore)

	adm := r.Group("/admin").Use(jwtmw.WithJWT(), cb.Enforce())
	adm.GET("/policies", ph.List)
	adm.POST("/policies", ph.Add)
	adm.DELETE("/policies", ph.Remove)

	return r
}
