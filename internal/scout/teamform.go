package scout

import (
	"context"
	"fmt"

	"github.com/squadpick/backend/internal/apifootball"
)

// FixtureFetcher is the upstream surface for form summaries. Satisfied
// by *apifootball.Client.
type FixtureFetcher interface {
	FetchTeamFixtures(ctx context.Context, teamID int, season string, last int) ([]apifootball.FixtureRecord, error)
}

// Form summarizes a team's recent played fixtures.
type Form struct {
	TeamID   int    `json:"team_id"`
	TeamName string `json:"team_name"`
	Season   string `json:"season"`

	Played int `json:"played"`
	Wins   int `json:"wins"`
	Draws  int `json:"draws"`
	Losses int `json:"losses"`

	GoalsFor     int `json:"goals_for"`
	GoalsAgainst int `json:"goals_against"`

	HomeWins int `json:"home_wins"`
	AwayWins int `json:"away_wins"`
}

// TeamForm summarizes a team's last played fixtures of a season.
// Fixtures without a final score are skipped.
func TeamForm(ctx context.Context, fetcher FixtureFetcher, teamID int, season string, last int) (*Form, error) {
	fixtures, err := fetcher.FetchTeamFixtures(ctx, teamID, season, last)
	if err != nil {
		return nil, fmt.Errorf("fetch fixtures for team %d: %w", teamID, err)
	}

	form := &Form{TeamID: teamID, Season: season}

	for _, fx := range fixtures {
		if fx.Goals.Home == nil || fx.Goals.Away == nil {
			continue
		}

		home := fx.Teams.Home.ID == teamID
		if form.TeamName == "" {
			if home {
				form.TeamName = fx.Teams.Home.Name
			} else {
				form.TeamName = fx.Teams.Away.Name
			}
		}

		scored, conceded := *fx.Goals.Home, *fx.Goals.Away
		if !home {
			scored, conceded = conceded, scored
		}

		form.Played++
		form.GoalsFor += scored
		form.GoalsAgainst += conceded

		switch {
		case scored > conceded:
			form.Wins++
			if home {
				form.HomeWins++
			} else {
				form.AwayWins++
			}
		case scored < conceded:
			form.Losses++
		default:
			form.Draws++
		}
	}

	return form, nil
}
