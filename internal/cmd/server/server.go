// Package server parses server command flags and runs the room service.
package server

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"hexroom/internal/audit"
	"hexroom/internal/platform/config"
	"hexroom/internal/platform/otel"
	"hexroom/internal/room/service"
	bboltstore "hexroom/internal/storage/bbolt"
	transport "hexroom/internal/transport/http"
)

// serviceName identifies this process in telemetry.
const serviceName = "hexroom"

// shutdownTimeout bounds graceful drain on exit.
const shutdownTimeout = 10 * time.Second

// Config holds server command configuration.
type Config struct {
	Port        int    `env:"HEXROOM_PORT" envDefault:"8080"`
	Addr        string `env:"HEXROOM_ADDR"`
	DBPath      string `env:"HEXROOM_DB_PATH" envDefault:"hexroom.db"`
	TokenSecret string `env:"HEXROOM_TOKEN_SECRET"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The server port")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "The server listen address (overrides -port)")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to the session database file")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the room service and blocks until ctx is cancelled or the
// server fails.
func Run(ctx context.Context, cfg Config) error {
	if cfg.TokenSecret == "" {
		return errors.New("HEXROOM_TOKEN_SECRET is required")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	shutdownTracing, err := otel.Setup(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("tracing shutdown failed", zap.Error(err))
		}
	}()

	store, err := bboltstore.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}
	defer store.Close()

	coordinator := service.New(store, audit.NewEmitter(store, logger), logger)
	router := transport.NewRouter(coordinator, []byte(cfg.TokenSecret), logger)

	addr := cfg.Addr
	if addr == "" {
		addr = fmt.Sprintf(":%d", cfg.Port)
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		drainCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(drainCtx); err != nil {
			return fmt.Errorf("shutdown server: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	}
}
