package server

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"chatproxy-go/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func buildTestEngine(t *testing.T, mutate func(*config.Config)) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.Default()
	cfg.RateLimitEnabled = false
	if mutate != nil {
		mutate(cfg)
	}
	return BuildEngine(cfg, Dependencies{})
}

func TestBuildEngine_Healthz(t *testing.T) {
	engine := buildTestEngine(t, nil)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", gjson.Get(w.Body.String(), "status").String())
}

func TestBuildEngine_Metrics(t *testing.T) {
	engine := buildTestEngine(t, nil)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "chatproxy_")
}

func TestBuildEngine_BasePath(t *testing.T) {
	engine := buildTestEngine(t, func(cfg *config.Config) {
		cfg.BasePath = "/proxy"
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/proxy/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBuildEngine_ChatMounted(t *testing.T) {
	engine := buildTestEngine(t, nil)

	// No key anywhere -> the chat handler must answer 401, proving the
	// route is wired through the middleware chain.
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"provider":"openai","model":"m"}`))
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBuildEngine_CORSPreflight(t *testing.T) {
	engine := buildTestEngine(t, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/chat", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestBuildEngine_RateLimit(t *testing.T) {
	engine := buildTestEngine(t, func(cfg *config.Config) {
		cfg.RateLimitEnabled = true
		cfg.RateLimitRPS = 1
		cfg.RateLimitBurst = 1
	})

	codes := make(map[int]int)
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.RemoteAddr = "10.1.2.3:5555"
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		codes[w.Code]++
	}
	assert.Equal(t, 1, codes[http.StatusOK])
	assert.Equal(t, 4, codes[http.StatusTooManyRequests])
}

func TestBuildEngine_StaticServing(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>home</html>"), 0o644))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o644))

	engine := buildTestEngine(t, func(cfg *config.Config) {
		cfg.StaticDir = dir
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/app.js", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "console.log(1)", w.Body.String())

	// SPA fallback for unknown paths
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/settings", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "home")
}
