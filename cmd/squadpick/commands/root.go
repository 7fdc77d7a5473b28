package commands

import (
	"github.com/spf13/cobra"

	"github.com/squadpick/backend/internal/apifootball"
	"github.com/squadpick/backend/pkg/config"
	"github.com/squadpick/backend/pkg/httputil"
	"github.com/squadpick/backend/pkg/logger"
)

var (
	// Global flags
	configFile string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "squadpick",
	Short: "squadpick - national squad selection from football statistics",
	Long: `squadpick CLI

Fetches per-player statistics from the API-Sports football API, computes
position-weighted ratings and assembles the best national squad per position.

Usage:
  go run ./cmd/squadpick [command]

Examples:
  go run ./cmd/squadpick topteam --country Spain --season 2023
  go run ./cmd/squadpick squad --country Spain --season 2023
  go run ./cmd/squadpick teamform --team 529 --season 2023
  go run ./cmd/squadpick api
  go run ./cmd/squadpick test-db`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// newFootballClient wires the rate-limited HTTP client into an upstream
// API client.
func newFootballClient(cfg *config.Config, log *logger.Logger) *apifootball.Client {
	httpClient := httputil.New(cfg, log).WithRateLimit(cfg.APIFootball.RateLimit)
	return apifootball.NewClient(cfg, httpClient, log)
}
