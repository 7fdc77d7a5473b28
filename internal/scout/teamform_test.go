package scout

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/squadpick/backend/internal/apifootball"
)

type fakeFixtureFetcher struct {
	fixtures []apifootball.FixtureRecord
	err      error
}

func (f *fakeFixtureFetcher) FetchTeamFixtures(_ context.Context, _ int, _ string, _ int) ([]apifootball.FixtureRecord, error) {
	return f.fixtures, f.err
}

func fixture(homeID int, homeName string, awayID int, awayName string, homeGoals, awayGoals *int) apifootball.FixtureRecord {
	return apifootball.FixtureRecord{
		Teams: apifootball.FixtureTeams{
			Home: apifootball.FixtureSide{ID: homeID, Name: homeName},
			Away: apifootball.FixtureSide{ID: awayID, Name: awayName},
		},
		Goals: apifootball.FixtureGoals{Home: homeGoals, Away: awayGoals},
	}
}

func TestTeamForm(t *testing.T) {
	fetcher := &fakeFixtureFetcher{
		fixtures: []apifootball.FixtureRecord{
			fixture(100, "Test FC", 200, "Rivals", ip(3), ip(1)),  // home win
			fixture(300, "Others", 100, "Test FC", ip(0), ip(2)),  // away win
			fixture(100, "Test FC", 300, "Others", ip(1), ip(1)),  // draw
			fixture(200, "Rivals", 100, "Test FC", ip(2), ip(0)),  // away loss
			fixture(100, "Test FC", 200, "Rivals", nil, nil),      // not played yet
		},
	}

	form, err := TeamForm(context.Background(), fetcher, 100, "2023", 10)
	require.NoError(t, err)

	assert.Equal(t, "Test FC", form.TeamName)
	assert.Equal(t, 4, form.Played)
	assert.Equal(t, 2, form.Wins)
	assert.Equal(t, 1, form.Draws)
	assert.Equal(t, 1, form.Losses)
	assert.Equal(t, 6, form.GoalsFor)
	assert.Equal(t, 4, form.GoalsAgainst)
	assert.Equal(t, 1, form.HomeWins)
	assert.Equal(t, 1, form.AwayWins)
}

func TestTeamFormUpstreamFailure(t *testing.T) {
	fetcher := &fakeFixtureFetcher{err: errors.New("upstream down")}

	_, err := TeamForm(context.Background(), fetcher, 100, "2023", 10)
	assert.Error(t, err)
}
