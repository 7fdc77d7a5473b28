package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	"github.com/squadpick/backend/internal/apifootball"
	"github.com/squadpick/backend/internal/selection"
	"github.com/squadpick/backend/internal/squad"
	"github.com/squadpick/backend/pkg/config"
	"github.com/squadpick/backend/pkg/logger"
)

type stubPlayer struct {
	profile squad.Profile
	pos     squad.Position
	rating  float64
}

func (s stubPlayer) Profile() squad.Profile   { return s.profile }
func (s stubPlayer) Stats() squad.Stats       { return squad.Stats{} }
func (s stubPlayer) Position() squad.Position { return s.pos }
func (s stubPlayer) ComputeRating() float64   { return s.rating }

type stubSelector struct {
	groups selection.RankedGroups
	err    error

	country string
	season  string
	topN    int
}

func (s *stubSelector) TopPlayers(_ context.Context, country, season string, topN int) (selection.RankedGroups, error) {
	s.country, s.season, s.topN = country, season, topN
	if s.err != nil {
		return nil, s.err
	}
	return s.groups, nil
}

type stubFixtures struct {
	fixtures []apifootball.FixtureRecord
	err      error
}

func (s *stubFixtures) FetchTeamFixtures(_ context.Context, _ int, _ string, _ int) ([]apifootball.FixtureRecord, error) {
	return s.fixtures, s.err
}

func testLogger() *logger.Logger {
	return logger.New(&config.Config{Env: "test", LogLevel: "error", LogFormat: "json"})
}

func TestGetSelection(t *testing.T) {
	groups := selection.RankedGroups{
		squad.PositionGoalkeeper: {
			{
				Rank:   1,
				Rating: 7.5,
				Player: stubPlayer{
					profile: squad.Profile{ID: 1, Name: "Keeper One"},
					pos:     squad.PositionGoalkeeper,
					rating:  7.5,
				},
			},
		},
	}
	selector := &stubSelector{groups: groups}
	h := NewSelectionHandler(selector, &stubFixtures{}, nil, testLogger())

	req := httptest.NewRequest("GET", "/api/selection?country=Spain&season=2023&top_n=5", nil)
	rec := httptest.NewRecorder()

	h.GetSelection(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	if selector.country != "Spain" || selector.season != "2023" || selector.topN != 5 {
		t.Errorf("Selector called with (%s, %s, %d)", selector.country, selector.season, selector.topN)
	}

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Count  int `json:"count"`
			Groups map[string][]struct {
				Rank   int     `json:"rank"`
				Rating float64 `json:"rating"`
				Player struct {
					ID   int    `json:"id"`
					Name string `json:"name"`
				} `json:"player"`
			} `json:"groups"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if !body.Success || body.Data.Count != 1 {
		t.Errorf("Unexpected response: %+v", body)
	}
	keepers := body.Data.Groups["Goalkeeper"]
	if len(keepers) != 1 || keepers[0].Player.Name != "Keeper One" || keepers[0].Rank != 1 {
		t.Errorf("Unexpected goalkeeper group: %+v", keepers)
	}
}

func TestGetSelectionDefaultTopN(t *testing.T) {
	selector := &stubSelector{groups: selection.RankedGroups{}}
	h := NewSelectionHandler(selector, &stubFixtures{}, nil, testLogger())

	req := httptest.NewRequest("GET", "/api/selection?country=Spain&season=2023", nil)
	rec := httptest.NewRecorder()

	h.GetSelection(rec, req)

	if selector.topN != selection.DefaultTopN {
		t.Errorf("topN = %d, want %d", selector.topN, selection.DefaultTopN)
	}
}

func TestGetSelectionMissingParams(t *testing.T) {
	h := NewSelectionHandler(&stubSelector{}, &stubFixtures{}, nil, testLogger())

	req := httptest.NewRequest("GET", "/api/selection?season=2023", nil)
	rec := httptest.NewRecorder()

	h.GetSelection(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Status = %d, want 400", rec.Code)
	}
}

func TestGetSelectionErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"data unavailable", apifootball.ErrDataUnavailable, http.StatusNotFound},
		{"player not found", apifootball.ErrPlayerNotFound, http.StatusNotFound},
		{"malformed record", squad.ErrMalformedRecord, http.StatusBadGateway},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewSelectionHandler(&stubSelector{err: tt.err}, &stubFixtures{}, nil, testLogger())

			req := httptest.NewRequest("GET", "/api/selection?country=Spain&season=2023", nil)
			rec := httptest.NewRecorder()

			h.GetSelection(rec, req)

			if rec.Code != tt.want {
				t.Errorf("Status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestGetSelectionSaveWithoutDatabase(t *testing.T) {
	h := NewSelectionHandler(&stubSelector{}, &stubFixtures{}, nil, testLogger())

	req := httptest.NewRequest("GET", "/api/selection?country=Spain&season=2023&save=true", nil)
	rec := httptest.NewRecorder()

	h.GetSelection(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("Status = %d, want 503", rec.Code)
	}
}

func TestGetSavedWithoutDatabase(t *testing.T) {
	h := NewSelectionHandler(&stubSelector{}, &stubFixtures{}, nil, testLogger())

	req := httptest.NewRequest("GET", "/api/selection/saved?country=Spain&season=2023", nil)
	rec := httptest.NewRecorder()

	h.GetSaved(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("Status = %d, want 503", rec.Code)
	}
}

func TestGetTeamForm(t *testing.T) {
	home, away := 2, 1
	fixtures := &stubFixtures{
		fixtures: []apifootball.FixtureRecord{
			{
				Teams: apifootball.FixtureTeams{
					Home: apifootball.FixtureSide{ID: 100, Name: "Test FC"},
					Away: apifootball.FixtureSide{ID: 200, Name: "Rivals"},
				},
				Goals: apifootball.FixtureGoals{Home: &home, Away: &away},
			},
		},
	}
	h := NewSelectionHandler(&stubSelector{}, fixtures, nil, testLogger())

	req := httptest.NewRequest("GET", "/api/teams/100/form?season=2023", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "100"})
	rec := httptest.NewRecorder()

	h.GetTeamForm(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Data struct {
			TeamName string `json:"team_name"`
			Wins     int    `json:"wins"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body.Data.TeamName != "Test FC" || body.Data.Wins != 1 {
		t.Errorf("Unexpected form: %+v", body.Data)
	}
}

func TestGetTeamFormMissingSeason(t *testing.T) {
	h := NewSelectionHandler(&stubSelector{}, &stubFixtures{}, nil, testLogger())

	req := httptest.NewRequest("GET", "/api/teams/100/form", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "100"})
	rec := httptest.NewRecorder()

	h.GetTeamForm(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Status = %d, want 400", rec.Code)
	}
}
