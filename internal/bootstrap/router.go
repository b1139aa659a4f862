package bootstrap

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/weblior/contact-api/config"
	httpapi "github.com/weblior/contact-api/internal/api/http"
	contacthttp "github.com/weblior/contact-api/internal/contact/http"
	"github.com/weblior/contact-api/internal/middleware"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	CORS        config.CORSConfig
	RateLimit   config.RateLimitConfig
	Contact     *contacthttp.Handler
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(gin.CustomRecovery(func(c *gin.Context, _ any) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}))

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = dep.CORS.AllowedOrigins
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "X-Request-Id")
	r.Use(cors.New(corsCfg))

	if dep.RateLimit.GlobalEnabled {
		r.Use(middleware.GlobalThrottle(dep.RateLimit.GlobalRPS, dep.RateLimit.GlobalBurst))
	}

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api")
	dep.Contact.Register(api)

	return r
}
