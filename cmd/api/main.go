package main

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/weblior/contact-api/config"
	"github.com/weblior/contact-api/internal/bootstrap"
	contacthttp "github.com/weblior/contact-api/internal/contact/http"
	"github.com/weblior/contact-api/internal/contact/mailer"
	"github.com/weblior/contact-api/internal/contact/ratelimit"
	"github.com/weblior/contact-api/internal/contact/service"
	"github.com/weblior/contact-api/internal/contact/spam"
	"github.com/weblior/contact-api/internal/contact/validate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	validator, err := validate.New()
	if err != nil {
		log.Fatalf("validator: %v", err)
	}

	svc := service.New(
		buildLimiter(cfg),
		validator,
		spam.New(),
		buildSender(cfg),
		cfg.Mail.FromAddress,
		cfg.Mail.BusinessEmail,
	)

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: cfg.App.ServiceName,
		Version:     cfg.App.Version,
		CORS:        cfg.CORS,
		RateLimit:   cfg.RateLimit,
		Contact:     contacthttp.New(svc),
	})

	log.Printf("[info] %s %s listening on :%s env=%s", cfg.App.ServiceName, cfg.App.Version, cfg.Server.Port, cfg.App.Environment)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}

func buildLimiter(cfg *config.Config) ratelimit.Limiter {
	if cfg.Redis.Addr == "" {
		log.Printf("[info] rate limiter: in-memory, limit=%d window=%s", cfg.RateLimit.Limit, cfg.RateLimit.Window)
		return ratelimit.NewMemoryLimiter(cfg.RateLimit.Limit, cfg.RateLimit.Window)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Fatalf("redis: %v", err)
	}

	log.Printf("[info] rate limiter: redis addr=%s limit=%d window=%s", cfg.Redis.Addr, cfg.RateLimit.Limit, cfg.RateLimit.Window)
	return ratelimit.NewRedisLimiter(client, cfg.RateLimit.Limit, cfg.RateLimit.Window)
}

func buildSender(cfg *config.Config) mailer.Sender {
	if cfg.Mail.APIKey == "" {
		// No provider configured for this deployment: skip sending
		// silently rather than treating it as an error.
		log.Printf("[info] mail: disabled (no RESEND_API_KEY)")
		return mailer.Noop{}
	}

	log.Printf("[info] mail: enabled from=%s business=%s", cfg.Mail.FromAddress, cfg.Mail.BusinessEmail)
	return mailer.NewResendClient(cfg.Mail.APIKey, cfg.Mail.BaseURL)
}
