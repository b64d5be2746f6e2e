package server

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"chatproxy-go/internal/config"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// registerStatic serves files from cfg.StaticDir for any route the API does
// not claim. Unknown paths fall back to index.html so a bundled single-page
// frontend keeps working with client-side routing.
func registerStatic(engine *gin.Engine, cfg *config.Config) {
	if cfg.StaticDir == "" {
		return
	}
	if info, err := os.Stat(cfg.StaticDir); err != nil || !info.IsDir() {
		log.WithField("dir", cfg.StaticDir).Warn("static dir not found, skipping static serving")
		return
	}

	fs := http.Dir(cfg.StaticDir)
	fileServer := http.StripPrefix(cfg.BasePath, http.FileServer(fs))

	engine.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.Status(http.StatusNotFound)
			return
		}
		rel := strings.TrimPrefix(c.Request.URL.Path, cfg.BasePath)
		rel = strings.TrimPrefix(rel, "/")
		if rel == "" {
			rel = "index.html"
		}
		if _, err := os.Stat(filepath.Join(cfg.StaticDir, filepath.FromSlash(rel))); err != nil {
			c.File(filepath.Join(cfg.StaticDir, "index.html"))
			return
		}
		fileServer.ServeHTTP(c.Writer, c.Request)
	})
}
