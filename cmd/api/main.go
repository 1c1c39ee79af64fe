package main

import (
	"log"

	"github.com/0001fella/abundant-life-sub000/internal/config"
	"github.com/0001fella/abundant-life-sub000/internal/middleware"
	"github.com/0001fella/abundant-life-sub000/internal/pkg"
	"github.com/0001fella/abundant-life-sub000/internal/repository/mysql"
	"github.com/0001fella/abundant-life-sub000/internal/repository/redis"
	"github.com/0001fella/abundant-life-sub000/internal/router"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	pkg.InitJWT(cfg.JWTSecret, cfg.JWTExpires)

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := mysql.InitDB(cfg.DBDSN); err != nil {
		log.Fatal("db connection error: ", err)
	}

	deps := router.Deps{
		Cfg:                cfg,
		DB:                 mysql.DB,
		Tokens:             middleware.NewMemoryTokenStore(),
		TestimonialLimiter: middleware.NewMemoryCounter(),
		PrayerLimiter:      middleware.NewMemoryCounter(),
		SMTP: pkg.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
		},
	}

	// With redis the rate limit and logout denylist survive restarts and
	// are shared across replicas; without it they are process-local.
	if cfg.RedisAddr != "" {
		if err := redis.Init(cfg.RedisAddr, cfg.RedisPass, 0); err != nil {
			log.Fatal("redis connection error: ", err)
		}
		defer redis.Close()
		deps.Tokens = &redis.TokenRepository{}
		deps.TestimonialLimiter = redis.NewRateLimiter("testimonial")
		deps.PrayerLimiter = redis.NewRateLimiter("prayer")
	}

	r := router.InitRouter(deps)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server error: ", err)
	}
}
