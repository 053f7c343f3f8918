// Command floodrisk serves the Singapore flood-risk assessment API. It loads
// the postal-code database once at startup and answers lookups against the
// read-only store until shut down.
package main

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/digitalsri/singapore-flood-risk-tool/internal/adapter/httpapi"
	"github.com/digitalsri/singapore-flood-risk-tool/internal/assess"
	"github.com/digitalsri/singapore-flood-risk-tool/internal/config"
	"github.com/digitalsri/singapore-flood-risk-tool/internal/domain"
	"github.com/digitalsri/singapore-flood-risk-tool/internal/observability"
	"github.com/digitalsri/singapore-flood-risk-tool/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	seed := cfg.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	} else {
		logger.Info("using fixed random seed", "seed", seed)
	}
	st := store.New(cfg.DatabasePath, logger, metrics,
		store.WithRand(rand.New(rand.NewSource(seed))),
		store.WithFlagProbabilities(cfg.FloodProneProbability, cfg.FloodHotspotProbability),
	)

	// A store that cannot load has nothing to serve; fail loudly at startup
	// rather than answer queries from partial data.
	if err := st.Load(); err != nil {
		logger.Error("failed to load record store", "path", cfg.DatabasePath, "error", err)
		os.Exit(1)
	}

	generator := domain.NewUniformGenerator(rand.New(rand.NewSource(seed + 1)))
	assessor := assess.New(st, generator, logger, metrics, nil)

	srv := httpapi.NewServer(cfg.Addr, assessor, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
