package apifootball

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// FetchPlayer retrieves the full player record for an id and season.
// Returns ErrPlayerNotFound when the id has no record for that season.
func (c *Client) FetchPlayer(ctx context.Context, id int, season string) (*PlayerRecord, error) {
	params := url.Values{}
	params.Set("id", strconv.Itoa(id))
	params.Set("season", season)

	env, err := c.get(ctx, "players", params)
	if err != nil {
		return nil, err
	}

	var records []PlayerRecord
	if err := json.Unmarshal(env.Response, &records); err != nil {
		return nil, fmt.Errorf("decode players response failed: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("player %d season %s: %w", id, season, ErrPlayerNotFound)
	}

	record := records[0]
	c.logger.WithFields(map[string]interface{}{
		"player_id": id,
		"season":    season,
		"name":      record.Player.Name,
	}).Debug("Fetched player record")

	return &record, nil
}

// PlayersPage is one page of a team's player listing.
type PlayersPage struct {
	Records []PlayerRecord
	Paging  Paging
}

// FetchTeamPlayers lists players registered for a team and season, one
// page at a time. Pages are 1-based; Paging.Total tells when to stop.
func (c *Client) FetchTeamPlayers(ctx context.Context, teamID int, season string, page int) (*PlayersPage, error) {
	params := url.Values{}
	params.Set("team", strconv.Itoa(teamID))
	params.Set("season", season)
	params.Set("page", strconv.Itoa(page))

	env, err := c.get(ctx, "players", params)
	if err != nil {
		return nil, err
	}

	var records []PlayerRecord
	if err := json.Unmarshal(env.Response, &records); err != nil {
		return nil, fmt.Errorf("decode players response failed: %w", err)
	}

	return &PlayersPage{Records: records, Paging: env.Paging}, nil
}

// FetchTeams lists the teams of a league season.
func (c *Client) FetchTeams(ctx context.Context, leagueID int, season string) ([]TeamInfo, error) {
	params := url.Values{}
	params.Set("league", strconv.Itoa(leagueID))
	params.Set("season", season)

	env, err := c.get(ctx, "teams", params)
	if err != nil {
		return nil, err
	}

	var entries []teamEntry
	if err := json.Unmarshal(env.Response, &entries); err != nil {
		return nil, fmt.Errorf("decode teams response failed: %w", err)
	}

	teams := make([]TeamInfo, 0, len(entries))
	for _, entry := range entries {
		teams = append(teams, entry.Team)
	}

	c.logger.WithFields(map[string]interface{}{
		"league": leagueID,
		"season": season,
		"count":  len(teams),
	}).Debug("Fetched league teams")

	return teams, nil
}
