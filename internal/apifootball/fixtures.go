package apifootball

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// FetchTeamFixtures returns a team's most recent played fixtures for a
// season, newest first, capped at last.
func (c *Client) FetchTeamFixtures(ctx context.Context, teamID int, season string, last int) ([]FixtureRecord, error) {
	params := url.Values{}
	params.Set("team", strconv.Itoa(teamID))
	params.Set("season", season)
	if last > 0 {
		params.Set("last", strconv.Itoa(last))
	}

	env, err := c.get(ctx, "fixtures", params)
	if err != nil {
		return nil, err
	}

	var fixtures []FixtureRecord
	if err := json.Unmarshal(env.Response, &fixtures); err != nil {
		return nil, fmt.Errorf("decode fixtures response failed: %w", err)
	}

	c.logger.WithFields(map[string]interface{}{
		"team":   teamID,
		"season": season,
		"count":  len(fixtures),
	}).Debug("Fetched team fixtures")

	return fixtures, nil
}
