package server

import (
	"chatproxy-go/internal/handlers/system"
	mw "chatproxy-go/internal/middleware"
	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes mounts the proxy endpoints under the given router group.
func RegisterAPIRoutes(root *gin.RouterGroup, deps Dependencies) {
	api := root.Group("/api")
	api.POST("/chat", deps.ChatHandler.Chat)
	api.GET("/system", deps.SystemHandler.Info)

	root.GET("/healthz", system.Health)
	root.GET("/metrics", mw.MetricsHandler)
}
