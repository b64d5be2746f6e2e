package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all process-wide settings. It is built once at startup and
// passed by reference to the handlers; nothing mutates it afterwards.
type Config struct {
	// Server settings
	Port       string `yaml:"port"`
	BasePath   string `yaml:"base_path"`
	Debug      bool   `yaml:"debug"`
	LogFile    string `yaml:"log_file"`
	RequestLog bool   `yaml:"request_log"`
	StaticDir  string `yaml:"static_dir"`

	// API keys. The x-api-key request header always wins; the
	// provider-specific key is tried next, then the shared default.
	DefaultAPIKey string `yaml:"api_key"`
	OpenAIKey     string `yaml:"openai_key"`
	GeminiKey     string `yaml:"gemini_key"`

	// Upstream settings
	OpenAIBaseURL string `yaml:"openai_base_url"`
	GoogleBaseURL string `yaml:"google_base_url"`
	ProxyURL      string `yaml:"proxy_url"`

	// Rate limiting
	RateLimitEnabled bool `yaml:"rate_limit_enabled"`
	RateLimitRPS     int  `yaml:"rate_limit_rps"`
	RateLimitBurst   int  `yaml:"rate_limit_burst"`

	// Transport timeouts (seconds; zero means library default)
	DialTimeoutSec           int `yaml:"dial_timeout_sec"`
	TLSHandshakeTimeoutSec   int `yaml:"tls_handshake_timeout_sec"`
	ResponseHeaderTimeoutSec int `yaml:"response_header_timeout_sec"`

	loadErr error
}

// Default returns the baseline configuration before file/env merging.
func Default() *Config {
	return &Config{
		Port:             "8080",
		OpenAIBaseURL:    "https://api.openai.com",
		GoogleBaseURL:    "https://generativelanguage.googleapis.com",
		RateLimitEnabled: true,
		RateLimitRPS:     10,
		RateLimitBurst:   20,
	}
}

// Load builds the configuration from defaults, an optional YAML file and
// environment variables, in that order (environment wins).
func Load() *Config {
	return LoadWithFile(strings.TrimSpace(os.Getenv("CONFIG_FILE")))
}

// LoadWithFile behaves like Load but reads the given YAML file when the
// path is non-empty. A missing file is not an error; a malformed one is.
func LoadWithFile(path string) *Config {
	cfg := Default()
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			// Leave defaults in place; the caller decides whether to abort.
			cfg.loadErr = err
		}
	}
	cfg.mergeEnvVars()
	cfg.normalize()
	return cfg
}

// Err reports a config file problem encountered during Load, if any.
func (c *Config) Err() error { return c.loadErr }

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func (c *Config) normalize() {
	c.Port = strings.TrimSpace(c.Port)
	c.BasePath = normalizeBasePath(c.BasePath)
	c.OpenAIBaseURL = strings.TrimRight(strings.TrimSpace(c.OpenAIBaseURL), "/")
	c.GoogleBaseURL = strings.TrimRight(strings.TrimSpace(c.GoogleBaseURL), "/")
	if c.RateLimitRPS <= 0 {
		c.RateLimitRPS = 10
	}
	if c.RateLimitBurst <= 0 {
		c.RateLimitBurst = 20
	}
}

// KeyFor returns the configured fallback API key for a provider name.
// Unknown providers map to the shared default key only.
func (c *Config) KeyFor(provider string) string {
	switch provider {
	case "openai":
		if c.OpenAIKey != "" {
			return c.OpenAIKey
		}
	case "google":
		if c.GeminiKey != "" {
			return c.GeminiKey
		}
	}
	return c.DefaultAPIKey
}

func normalizeBasePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" || p == "/" {
		return ""
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return strings.TrimRight(p, "/")
}

func parsePort(v string) (string, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return "", err
	}
	if n <= 0 || n > 65535 {
		return "", fmt.Errorf("port out of range: %d", n)
	}
	return strconv.Itoa(n), nil
}

func parseInt(v string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(v))
}
