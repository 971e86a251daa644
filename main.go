package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"patidestek/config"
	"patidestek/db"
	"patidestek/middleware"
	"patidestek/pkg/cache"
	"patidestek/pkg/jwt"
	"patidestek/pkg/monitoring"
	"patidestek/router"
	"patidestek/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

func setupLogging(cfg *config.Config) {
	if cfg.Log.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	if level, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		logrus.SetLevel(level)
	}
}

func main() {
	cfg := config.Init()
	setupLogging(cfg)

	jwt.Configure(cfg.JWT.SigningKey, cfg.JWT.Expiry, cfg.JWT.Issuer)

	db.Init(cfg)

	if cfg.Redis.Addr != "" {
		if err := cache.InitRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB); err != nil {
			logrus.WithError(err).Warn("redis unavailable, user-state cache disabled")
		} else {
			logrus.WithField("addr", cfg.Redis.Addr).Info("redis connected")
		}
	}

	if err := services.Location.Load(cfg.Locations.Dir); err != nil {
		logrus.WithError(err).Fatal("loading location fixtures")
	}

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	app := gin.New()

	app.Use(middleware.Recovery())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(middleware.Cors(cfg.Cors))
	app.Use(middleware.RateLimit(cfg.RateLimit.RPM))
	app.Use(monitoring.PrometheusMiddleware())

	app.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.Init(app)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      app,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logrus.WithField("port", cfg.Server.Port).Info("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logrus.WithError(err).Warn("forced shutdown")
	}

	cache.Close()
	logrus.Info("server stopped")
}
