package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/squadpick/backend/internal/scout"
	"github.com/squadpick/backend/pkg/config"
	"github.com/squadpick/backend/pkg/logger"
)

// squadCmd represents the squad command
var squadCmd = &cobra.Command{
	Use:   "squad",
	Short: "List candidate player ids for a nationality and season",
	Long: `Walks the configured leagues and prints the ids of every player of
the given nationality, in discovery order. This is the id list the
topteam command evaluates.

Example:
  go run ./cmd/squadpick squad --country Spain --season 2023`,
	RunE: runSquad,
}

var (
	squadCountry string
	squadSeason  string
)

func init() {
	rootCmd.AddCommand(squadCmd)

	squadCmd.Flags().StringVar(&squadCountry, "country", "", "player nationality (required)")
	squadCmd.Flags().StringVar(&squadSeason, "season", "", "season year, e.g. 2023 (required)")
	squadCmd.MarkFlagRequired("country")
	squadCmd.MarkFlagRequired("season")
}

func runSquad(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg)

	client := newFootballClient(cfg, log)
	s := scout.NewScout(cfg.APIFootball, client, log)

	ids, err := s.PlayerIDs(cmd.Context(), squadCountry, squadSeason)
	if err != nil {
		PrintError("Id discovery failed")
		return err
	}

	fmt.Printf("%s squad candidates for season %s:\n", squadCountry, squadSeason)
	for i, id := range ids {
		fmt.Printf("   %2d. %d\n", i+1, id)
	}

	fmt.Println()
	PrintSuccess(fmt.Sprintf("%d candidate ids found", len(ids)))
	return nil
}
