package server

import (
	"chatproxy-go/internal/config"
	mw "chatproxy-go/internal/middleware"
	"github.com/gin-gonic/gin"
)

// applyStandardEngineSettings applies common Gin settings and the shared
// middleware chain. Order matters: recovery outermost, then request tagging,
// metrics, CORS, logging, and rate limiting closest to the handlers.
func applyStandardEngineSettings(engine *gin.Engine, cfg *config.Config) {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	_ = engine.SetTrustedProxies([]string{})

	engine.Use(mw.Recovery(), mw.RequestID(), mw.Metrics())
	engine.Use(mw.CORS())
	if cfg.RequestLog {
		engine.Use(mw.RequestLogger())
	}
	if cfg.RateLimitEnabled {
		engine.Use(mw.RateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst))
	}
}
