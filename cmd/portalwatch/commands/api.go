package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/portalwatch/backend/internal/api"
	"github.com/portalwatch/backend/internal/api/handlers"
	"github.com/portalwatch/backend/internal/scoring"
	"github.com/portalwatch/backend/internal/signals"
	"github.com/portalwatch/backend/pkg/config"
	"github.com/portalwatch/backend/pkg/logger"
	"github.com/portalwatch/backend/pkg/metrics"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the REST API server",
	Long: `Starts the PortalWatch REST API server.

Endpoints:
  GET  /health        - Health check
  GET  /metrics       - Prometheus metrics (when enabled)
  GET  /api/evaluate  - Aggregate signals and score a player/team
  POST /api/score     - Score a caller-supplied signal record

Example:
  go run ./cmd/portalwatch api
  go run ./cmd/portalwatch api --port 8080`,
	RunE: runAPIServer,
}

var apiPort string

func init() {
	rootCmd.AddCommand(apiCmd)

	apiCmd.Flags().StringVar(&apiPort, "port", "", "API server port (overrides PORT)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if apiPort != "" {
		cfg.Port = apiPort
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	log.WithFields(map[string]interface{}{
		"port": cfg.Port,
		"env":  cfg.Env,
	}).Info("Initializing API server")

	// 3. Wire the core
	var m *metrics.Manager
	if cfg.MetricsEnabled {
		m = metrics.New()
	}

	aggregator, scorer := buildCore(cfg, log, m)
	evaluateHandler := handlers.NewEvaluateHandler(aggregator, scorer, m, log)
	router := api.NewRouter(evaluateHandler, m, log)
	server := api.New(cfg, log, router)

	// 4. Start with graceful shutdown
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.WithField("signal", sig.String()).Info("Shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	return server.Shutdown(ctx)
}

// buildCore wires the aggregator and scorer from config.
func buildCore(cfg *config.Config, log *logger.Logger, m *metrics.Manager) (*signals.Aggregator, *scoring.Scorer) {
	httpClient := newHTTPClient(cfg, log)
	source := newStatsSource(cfg, httpClient, log)

	aggregator := signals.New(source, log)
	if m != nil {
		aggregator = aggregator.WithMetrics(m)
	}
	if cfg.Roster.Enabled {
		aggregator = aggregator.WithRosterFallback(newRosterFallback(cfg, httpClient, log))
	}

	scorer := scoring.New(scoring.DefaultWeights(), log)
	return aggregator, scorer
}
