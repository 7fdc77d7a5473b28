package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/squadpick/backend/internal/scout"
	"github.com/squadpick/backend/pkg/config"
	"github.com/squadpick/backend/pkg/logger"
)

// teamformCmd represents the teamform command
var teamformCmd = &cobra.Command{
	Use:   "teamform",
	Short: "Summarize a team's recent results",
	Long: `Fetches a team's last played fixtures and prints a win/draw/loss
summary with goal totals.

Example:
  go run ./cmd/squadpick teamform --team 529 --season 2023
  go run ./cmd/squadpick teamform --team 529 --season 2023 --last 5`,
	RunE: runTeamForm,
}

var (
	teamformTeam   int
	teamformSeason string
	teamformLast   int
)

func init() {
	rootCmd.AddCommand(teamformCmd)

	teamformCmd.Flags().IntVar(&teamformTeam, "team", 0, "team id (required)")
	teamformCmd.Flags().StringVar(&teamformSeason, "season", "", "season year, e.g. 2023 (required)")
	teamformCmd.Flags().IntVar(&teamformLast, "last", 10, "number of recent fixtures")
	teamformCmd.MarkFlagRequired("team")
	teamformCmd.MarkFlagRequired("season")
}

func runTeamForm(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg)

	client := newFootballClient(cfg, log)

	form, err := scout.TeamForm(cmd.Context(), client, teamformTeam, teamformSeason, teamformLast)
	if err != nil {
		PrintError("Form fetch failed")
		return err
	}

	name := form.TeamName
	if name == "" {
		name = strconv.Itoa(form.TeamID)
	}

	PrintDoubleSeparator()
	fmt.Printf("  %s — last %d fixtures, season %s\n", name, form.Played, form.Season)
	PrintSeparator()
	PrintKeyValue("Record", fmt.Sprintf("%dW %dD %dL", form.Wins, form.Draws, form.Losses), 14)
	PrintKeyValue("Goals", fmt.Sprintf("%d for / %d against", form.GoalsFor, form.GoalsAgainst), 14)
	PrintKeyValue("Wins at home", strconv.Itoa(form.HomeWins), 14)
	PrintKeyValue("Wins away", strconv.Itoa(form.AwayWins), 14)

	return nil
}
