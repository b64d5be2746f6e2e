package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chatproxy-go/internal/config"
	"chatproxy-go/internal/constants"
	"chatproxy-go/internal/logging"
	tracing "chatproxy-go/internal/monitoring/tracing"
	srv "chatproxy-go/internal/server"
	"chatproxy-go/internal/version"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	// Load .env before reading any configuration; missing file is fine.
	_ = godotenv.Load()

	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	debug := flag.Bool("debug", false, "Enable debug mode")
	flag.Parse()

	cfg := config.LoadWithFile(*configPath)
	if err := cfg.Err(); err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}
	if *debug {
		cfg.Debug = true
	}

	if err := logging.Setup(cfg); err != nil {
		log.WithError(err).Fatal("failed to configure logging")
	}

	traceShutdown, err := tracing.Init(context.Background())
	if err != nil {
		log.WithError(err).Warn("failed to initialize tracing")
	}
	if traceShutdown != nil {
		defer func() {
			if err := traceShutdown(context.Background()); err != nil {
				log.WithError(err).Warn("failed to shutdown tracing")
			}
		}()
	}

	log.Infof("Starting chatproxy %s (config: %s)", version.Version, *configPath)
	if cfg.DefaultAPIKey == "" && cfg.OpenAIKey == "" && cfg.GeminiKey == "" {
		log.Warn("no upstream API keys configured; callers must supply x-api-key")
	}

	engine := srv.BuildEngine(cfg, srv.Dependencies{})

	httpSrv := &http.Server{Addr: ":" + cfg.Port, Handler: engine}
	go func() {
		log.Infof("Chat proxy listening on :%s", cfg.Port)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Errorf("http server: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info("Shutdown signal received")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), constants.ServerShutdownTimeout)
	defer cancelShutdown()
	go func() { _ = httpSrv.Shutdown(shutdownCtx) }()

	// Give in-flight streams a moment to drain before the process exits.
	time.Sleep(constants.ServerGracefulWait)
	log.Info("Server stopped")
}
