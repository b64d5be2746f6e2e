package config

import (
	"os"
	"strings"
)

func (c *Config) mergeEnvVars() {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := parsePort(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv("BASE_PATH"); v != "" {
		c.BasePath = normalizeBasePath(v)
	}
	if v := os.Getenv("API_KEY"); v != "" {
		c.DefaultAPIKey = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		c.OpenAIKey = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.GeminiKey = v
	}
	if v := os.Getenv("OPENAI_BASE_URL"); v != "" {
		c.OpenAIBaseURL = v
	}
	if v := os.Getenv("GOOGLE_BASE_URL"); v != "" {
		c.GoogleBaseURL = v
	}
	if v := os.Getenv("PROXY_URL"); v != "" {
		c.ProxyURL = v
	}
	if v := os.Getenv("STATIC_DIR"); v != "" {
		c.StaticDir = v
	}
	if v := os.Getenv("DEBUG"); v == "true" || v == "1" {
		c.Debug = true
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		c.LogFile = v
	}
	if v := os.Getenv("REQUEST_LOG"); v == "true" || v == "1" {
		c.RequestLog = true
	}
	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		lower := strings.ToLower(strings.TrimSpace(v))
		c.RateLimitEnabled = !(lower == "false" || lower == "0")
	}
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		if n, err := parseInt(v); err == nil {
			c.RateLimitRPS = n
		}
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		if n, err := parseInt(v); err == nil {
			c.RateLimitBurst = n
		}
	}
	if v := os.Getenv("DIAL_TIMEOUT_SEC"); v != "" {
		if n, err := parseInt(v); err == nil {
			c.DialTimeoutSec = n
		}
	}
	if v := os.Getenv("TLS_HANDSHAKE_TIMEOUT_SEC"); v != "" {
		if n, err := parseInt(v); err == nil {
			c.TLSHandshakeTimeoutSec = n
		}
	}
	if v := os.Getenv("RESPONSE_HEADER_TIMEOUT_SEC"); v != "" {
		if n, err := parseInt(v); err == nil {
			c.ResponseHeaderTimeoutSec = n
		}
	}
}
