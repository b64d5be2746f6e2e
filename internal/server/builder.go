package server

import (
	"chatproxy-go/internal/config"
	"chatproxy-go/internal/handlers/chat"
	"chatproxy-go/internal/handlers/system"
	"chatproxy-go/internal/upstream"
	"github.com/gin-gonic/gin"
)

// Dependencies encapsulates runtime services required to build the HTTP engine.
// Zero-value fields are constructed from cfg, which keeps tests free to inject
// a fake upstream client.
type Dependencies struct {
	UpstreamClient *upstream.Client
	ChatHandler    *chat.Handler
	SystemHandler  *system.Handler
}

// BuildEngine constructs the Gin engine with all middleware and routes mounted.
func BuildEngine(cfg *config.Config, deps Dependencies) *gin.Engine {
	if deps.UpstreamClient == nil {
		deps.UpstreamClient = upstream.New(cfg)
	}
	if deps.ChatHandler == nil {
		deps.ChatHandler = chat.NewWithClient(cfg, deps.UpstreamClient)
	}
	if deps.SystemHandler == nil {
		deps.SystemHandler = system.New()
	}

	engine := gin.New()
	applyStandardEngineSettings(engine, cfg)

	root := engine.Group(cfg.BasePath)
	RegisterAPIRoutes(root, deps)

	registerStatic(engine, cfg)
	return engine
}
