package router

import (
	"log/slog"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/pkondrashkov/accountd/internal/config"
	"github.com/pkondrashkov/accountd/internal/server/http/handlers"
	"github.com/pkondrashkov/accountd/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.ServiceFacade, health handlers.Pinger, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	if cfg.SentryDSN != "" {
		engine.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	engine.Use(middleware.CorrelationID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(cors.New(corsConfig(cfg)))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	statusHandler := handlers.NewStatusHandler(health)
	accountHandler := handlers.NewAccountHandler(facade)
	tokenHandler := handlers.NewTokenHandler(facade)

	engine.GET("/", statusHandler.Index)
	engine.GET("/ping", statusHandler.Ping)

	account := engine.Group("/api/v1/account")
	account.POST("/token", tokenHandler.Issue)

	authed := account.Group("")
	authed.Use(middleware.TokenAuth(facade))
	authed.GET("/user", accountHandler.Profile)
	authed.POST("/user", accountHandler.Create)

	return engine
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.CorrelationHeader},
		ExposeHeaders:    []string{middleware.CorrelationHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
	}
	return corsCfg
}
