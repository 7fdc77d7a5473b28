package scout

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/squadpick/backend/internal/apifootball"
	"github.com/squadpick/backend/internal/selection"
	"github.com/squadpick/backend/internal/squad"
	"github.com/squadpick/backend/pkg/config"
	"github.com/squadpick/backend/pkg/logger"
)

// PlayerFetcher is the upstream surface the scout needs. Satisfied by
// *apifootball.Client.
type PlayerFetcher interface {
	FetchTeams(ctx context.Context, leagueID int, season string) ([]apifootball.TeamInfo, error)
	FetchTeamPlayers(ctx context.Context, teamID int, season string, page int) (*apifootball.PlayersPage, error)
	FetchPlayer(ctx context.Context, id int, season string) (*apifootball.PlayerRecord, error)
}

// Scout runs the player selection pipeline: discover candidate ids for
// a nationality, fetch each player's full record sequentially with a
// fixed pause between requests, and rank the results by position.
type Scout struct {
	fetcher PlayerFetcher
	logger  *logger.Logger

	leagues []int
	delay   time.Duration

	// sleep is swapped out in tests to observe pacing.
	sleep func(time.Duration)
}

// NewScout creates a scout over the configured leagues.
func NewScout(cfg config.APIFootballConfig, fetcher PlayerFetcher, log *logger.Logger) *Scout {
	return &Scout{
		fetcher: fetcher,
		logger:  log,
		leagues: cfg.Leagues,
		delay:   cfg.RequestDelay,
		sleep:   time.Sleep,
	}
}

// PlayerIDs returns the candidate player ids for a nationality and
// season, in discovery order with duplicates removed. It walks every
// configured league's teams and their paged player listings. Fails with
// apifootball.ErrDataUnavailable when the upstream errors or no player
// of that nationality is found.
func (s *Scout) PlayerIDs(ctx context.Context, country, season string) ([]int, error) {
	country = strings.TrimSpace(country)
	if country == "" {
		return nil, fmt.Errorf("country is required: %w", apifootball.ErrDataUnavailable)
	}

	seen := make(map[int]bool)
	ids := make([]int, 0)

	for _, leagueID := range s.leagues {
		teams, err := s.fetcher.FetchTeams(ctx, leagueID, season)
		if err != nil {
			return nil, fmt.Errorf("list teams for league %d: %v: %w", leagueID, err, apifootball.ErrDataUnavailable)
		}

		for _, team := range teams {
			page := 1
			for {
				listing, err := s.fetcher.FetchTeamPlayers(ctx, team.ID, season, page)
				if err != nil {
					return nil, fmt.Errorf("list players for team %d: %v: %w", team.ID, err, apifootball.ErrDataUnavailable)
				}

				for _, record := range listing.Records {
					if !strings.EqualFold(record.Player.Nationality, country) {
						continue
					}
					if record.Player.ID == 0 || seen[record.Player.ID] {
						continue
					}
					seen[record.Player.ID] = true
					ids = append(ids, record.Player.ID)
				}

				if page >= listing.Paging.Total {
					break
				}
				page++
			}
		}
	}

	if len(ids) == 0 {
		return nil, fmt.Errorf("no %s players found for season %s: %w", country, season, apifootball.ErrDataUnavailable)
	}

	s.logger.WithFields(map[string]interface{}{
		"country": country,
		"season":  season,
		"count":   len(ids),
	}).Info("Candidate ids collected")

	return ids, nil
}

// TopPlayers fetches every candidate player for (country, season) and
// ranks them by position, keeping the top n per group. Fetches run
// strictly one at a time with a fixed pause between consecutive
// requests; for N ids exactly N-1 pauses occur. The first failed fetch
// aborts the whole run.
func (s *Scout) TopPlayers(ctx context.Context, country, season string, topN int) (selection.RankedGroups, error) {
	ids, err := s.PlayerIDs(ctx, country, season)
	if err != nil {
		return nil, err
	}

	players := make([]squad.Player, 0, len(ids))
	for i, id := range ids {
		if i > 0 {
			s.sleep(s.delay)
		}

		record, err := s.fetcher.FetchPlayer(ctx, id, season)
		if err != nil {
			return nil, fmt.Errorf("fetch player %d: %w", id, err)
		}

		player, err := squad.FromRecord(*record, season)
		if err != nil {
			return nil, err
		}
		players = append(players, player)
	}

	groups := selection.Rank(players, topN)

	s.logger.WithFields(map[string]interface{}{
		"country":  country,
		"season":   season,
		"fetched":  len(players),
		"selected": groups.Total(),
	}).Info("Squad selection completed")

	return groups, nil
}
