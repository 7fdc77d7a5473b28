package commands

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/squadpick/backend/internal/scout"
	"github.com/squadpick/backend/internal/selection"
	"github.com/squadpick/backend/internal/squad"
	"github.com/squadpick/backend/pkg/config"
	"github.com/squadpick/backend/pkg/database"
	"github.com/squadpick/backend/pkg/logger"
)

// topteamCmd represents the topteam command
var topteamCmd = &cobra.Command{
	Use:   "topteam",
	Short: "Assemble the best national squad for a season",
	Long: `Fetches every candidate player of a nationality, computes
position-weighted ratings and prints the top players per position.

Requests run strictly one at a time with a fixed pause between calls,
so large squads take a while by design.

Example:
  go run ./cmd/squadpick topteam --country Spain --season 2023
  go run ./cmd/squadpick topteam --country France --season 2023 --top-n 5 --save`,
	RunE: runTopTeam,
}

var (
	topteamCountry string
	topteamSeason  string
	topteamTopN    int
	topteamSave    bool
)

func init() {
	rootCmd.AddCommand(topteamCmd)

	topteamCmd.Flags().StringVar(&topteamCountry, "country", "", "player nationality (required)")
	topteamCmd.Flags().StringVar(&topteamSeason, "season", "", "season year, e.g. 2023 (required)")
	topteamCmd.Flags().IntVar(&topteamTopN, "top-n", selection.DefaultTopN, "players kept per position")
	topteamCmd.Flags().BoolVar(&topteamSave, "save", false, "persist the selection to the database")
	topteamCmd.MarkFlagRequired("country")
	topteamCmd.MarkFlagRequired("season")
}

func runTopTeam(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg)

	var repo *selection.Repository
	if topteamSave {
		db, err := database.New(cfg)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer db.Close()
		repo = selection.NewRepository(db.Pool)
	}

	client := newFootballClient(cfg, log)
	s := scout.NewScout(cfg.APIFootball, client, log)

	PrintDoubleSeparator()
	fmt.Printf("  Top %s squad — season %s\n", topteamCountry, topteamSeason)
	PrintSeparator()

	start := time.Now()
	groups, err := s.TopPlayers(cmd.Context(), topteamCountry, topteamSeason, topteamTopN)
	if err != nil {
		PrintError("Selection run failed")
		return err
	}

	printGroups(groups)

	if topteamSave {
		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()
		if err := repo.SaveSelection(ctx, topteamCountry, topteamSeason, groups); err != nil {
			return fmt.Errorf("save selection: %w", err)
		}
		PrintSuccess("Selection saved")
	}

	fmt.Println()
	PrintSuccess(fmt.Sprintf("%d players selected in %.1fs", groups.Total(), time.Since(start).Seconds()))
	return nil
}

func printGroups(groups selection.RankedGroups) {
	columns := []string{"Rank", "Player", "Team", "Age", "Rating"}
	widths := []int{4, 28, 24, 4, 8}

	for _, position := range squad.Positions() {
		group, ok := groups[position]
		if !ok {
			continue
		}

		fmt.Printf("\n%s\n", position)
		PrintTableHeader(columns, widths)
		for _, rp := range group {
			profile := rp.Player.Profile()
			PrintTableRow([]string{
				strconv.Itoa(rp.Rank),
				profile.Name,
				profile.TeamName,
				strconv.Itoa(profile.Age),
				fmt.Sprintf("%.3f", rp.Rating),
			}, widths)
		}
	}
}
