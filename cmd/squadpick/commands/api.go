package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/squadpick/backend/internal/api"
	"github.com/squadpick/backend/internal/api/handlers"
	"github.com/squadpick/backend/internal/scout"
	"github.com/squadpick/backend/internal/selection"
	"github.com/squadpick/backend/pkg/config"
	"github.com/squadpick/backend/pkg/database"
	"github.com/squadpick/backend/pkg/logger"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the API server",
	Long: `Starts the REST API server.

Endpoints:
  GET /health                    - Health check
  GET /api/selection             - Live squad selection (country, season, top_n, save)
  GET /api/selection/saved       - Stored selection for country+season
  GET /api/selection/seasons     - Stored (country, season) pairs
  GET /api/teams/{id}/form       - Recent results summary for a team
  GET /metrics                   - Prometheus metrics (if enabled)

Example:
  go run ./cmd/squadpick api
  go run ./cmd/squadpick api --port 8080`,
	RunE: runAPIServer,
}

var apiPort string

func init() {
	rootCmd.AddCommand(apiCmd)

	apiCmd.Flags().StringVar(&apiPort, "port", "", "API server port (overrides config)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	fmt.Println("=== squadpick API Server ===")

	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if apiPort != "" {
		cfg.Port = apiPort
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	log.WithFields(map[string]interface{}{
		"port": cfg.Port,
		"env":  cfg.Env,
	}).Info("Initializing API server")

	// 3. Connect to database when configured; the API runs without one,
	// persistence endpoints then return 503.
	var repo *selection.Repository
	if cfg.Database.URL != "" {
		db, err := database.New(cfg)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer db.Close()
		repo = selection.NewRepository(db.Pool)
		log.Info("Connected to database")
	} else {
		log.Warn("DATABASE_URL not set, persistence endpoints disabled")
	}

	// 4. Create upstream client and scout
	client := newFootballClient(cfg, log)
	s := scout.NewScout(cfg.APIFootball, client, log)

	// 5. Create handler and router
	selectionHandler := handlers.NewSelectionHandler(s, client, repo, log)
	router := api.NewRouter(cfg, selectionHandler, log)

	// 6. Create server
	server := api.New(cfg, log, router)

	// 7. Start server with graceful shutdown
	go func() {
		if err := server.Start(); err != nil {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	log.Info("API server started successfully")
	fmt.Printf("\n✅ Server running on http://localhost:%s\n", cfg.Port)
	fmt.Println("\nPress Ctrl+C to stop")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
