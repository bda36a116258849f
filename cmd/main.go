package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/obsnetwork/geomagws/internal/config"
	"github.com/obsnetwork/geomagws/internal/observatory"
	"github.com/obsnetwork/geomagws/internal/waves"
	"github.com/obsnetwork/geomagws/internal/web"
)

// Command geomagws serves geomagnetic observatory time series data.
//
// The service translates loosely typed HTTP query parameters into
// validated queries, maps requested elements onto wave server channels,
// fetches and converts the raw samples, and renders the result as
// IAGA-2002 text or JSON.
//
// Usage:
//
//	geomagws [flags]
//
// The flags are:
//
//	-config string
//	      path to config file (default "config.yaml")
//	-observatories string
//	      optional path to an external observatory metadata file
func main() {
	flags := parseFlags()

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	appConfig, err := config.Load(flags.ConfigPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := newLogger(appConfig.Logging)

	metadata, err := loadMetadata(flags.ObservatoriesPath)
	if err != nil {
		logger.Fatalf("Failed to load observatory metadata: %v", err)
	}

	fetcher, closer, err := newFetcher(appConfig.Waves, logger)
	if err != nil {
		logger.Fatalf("Failed to create wave backend: %v", err)
	}
	if closer != nil {
		defer closer.Close()
	}

	handler, err := web.NewRouter(metadata, fetcher, logger, web.ServerConfig{
		CacheSize:      appConfig.Server.CacheSize,
		RateLimit:      appConfig.Server.RateLimit,
		RateLimitBurst: appConfig.Server.RateLimitBurst,
		AllowedOrigins: appConfig.Server.AllowedOrigins,
	})
	if err != nil {
		logger.Fatalf("Failed to setup server: %v", err)
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", appConfig.Server.Host, appConfig.Server.Port),
		Handler: handler,
	}

	go handleShutdown(srv, logger)

	logger.WithFields(logrus.Fields{
		"addr":    srv.Addr,
		"backend": appConfig.Waves.Backend,
	}).Info("Starting server")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalf("Server error: %v", err)
	}
}

type flagConfig struct {
	ConfigPath        string
	ObservatoriesPath string
}

func parseFlags() *flagConfig {
	flags := &flagConfig{}

	flag.StringVar(&flags.ConfigPath, "config", "config.yaml", "path to config file")
	flag.StringVar(&flags.ObservatoriesPath, "observatories", "", "optional observatory metadata file")

	flag.Parse()

	return flags
}

func newLogger(cfg config.LoggingConfig) *logrus.Logger {
	logger := logrus.New()
	if cfg.Format != "text" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	if level, err := logrus.ParseLevel(cfg.Level); err == nil {
		logger.SetLevel(level)
	}
	return logger
}

func loadMetadata(path string) (observatory.Index, error) {
	if path != "" {
		return observatory.LoadFile(path)
	}
	return observatory.Load()
}

// newFetcher selects the wave backend from config. The Postgres archive
// also needs closing at shutdown, so it is returned as an io.Closer.
func newFetcher(cfg config.WavesConfig, logger *logrus.Logger) (waves.Fetcher, io.Closer, error) {
	switch cfg.Backend {
	case "", "edge":
		return waves.NewEdgeClient(cfg.EdgeURL, logger), nil, nil
	case "postgres":
		archive, err := waves.NewPostgresArchive(cfg.Postgres.ConnString())
		if err != nil {
			return nil, nil, err
		}
		return archive, archive, nil
	default:
		return nil, nil, fmt.Errorf("unknown wave backend %q", cfg.Backend)
	}
}

// Handle graceful shutdown
func handleShutdown(srv *http.Server, logger *logrus.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	sig := <-sigChan
	logger.Printf("Received signal %v, initiating shutdown", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("Shutdown error: %v", err)
	}
	logger.Println("Server stopped")
}
