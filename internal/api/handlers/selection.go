package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/squadpick/backend/internal/apifootball"
	"github.com/squadpick/backend/internal/scout"
	"github.com/squadpick/backend/internal/selection"
	"github.com/squadpick/backend/internal/squad"
	"github.com/squadpick/backend/pkg/logger"
)

// SquadSelector runs the live selection pipeline. Satisfied by
// *scout.Scout.
type SquadSelector interface {
	TopPlayers(ctx context.Context, country, season string, topN int) (selection.RankedGroups, error)
}

// SelectionHandler handles squad selection API endpoints.
type SelectionHandler struct {
	selector SquadSelector
	fixtures scout.FixtureFetcher
	repo     *selection.Repository
	logger   *logger.Logger
}

// NewSelectionHandler creates a new selection handler. repo may be nil
// when no database is configured; persistence endpoints then return 503.
func NewSelectionHandler(selector SquadSelector, fixtures scout.FixtureFetcher, repo *selection.Repository, log *logger.Logger) *SelectionHandler {
	return &SelectionHandler{
		selector: selector,
		fixtures: fixtures,
		repo:     repo,
		logger:   log,
	}
}

// rankedPlayerView is the wire shape of one ranked player.
type rankedPlayerView struct {
	Rank   int           `json:"rank"`
	Rating float64       `json:"rating"`
	Player squad.Profile `json:"player"`
}

// GetSelection runs a live squad selection.
// GET /api/selection?country=Spain&season=2023&top_n=8&save=true
func (h *SelectionHandler) GetSelection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	country := r.URL.Query().Get("country")
	season := r.URL.Query().Get("season")
	if country == "" || season == "" {
		respondError(w, http.StatusBadRequest, "country and season are required")
		return
	}

	topN := selection.DefaultTopN
	if raw := r.URL.Query().Get("top_n"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondError(w, http.StatusBadRequest, "top_n must be a positive integer")
			return
		}
		topN = n
	}

	save := r.URL.Query().Get("save") == "true"
	if save && h.repo == nil {
		respondError(w, http.StatusServiceUnavailable, "database not configured")
		return
	}

	groups, err := h.selector.TopPlayers(ctx, country, season, topN)
	if err != nil {
		h.logger.WithError(err).WithFields(map[string]interface{}{
			"country": country,
			"season":  season,
		}).Error("Selection run failed")
		respondError(w, selectionErrorStatus(err), err.Error())
		return
	}

	if save {
		if err := h.repo.SaveSelection(ctx, country, season, groups); err != nil {
			h.logger.WithError(err).Error("Failed to save selection")
			respondError(w, http.StatusInternalServerError, "Failed to save selection")
			return
		}
	}

	views := make(map[squad.Position][]rankedPlayerView, len(groups))
	for position, group := range groups {
		list := make([]rankedPlayerView, 0, len(group))
		for _, rp := range group {
			list = append(list, rankedPlayerView{
				Rank:   rp.Rank,
				Rating: rp.Rating,
				Player: rp.Player.Profile(),
			})
		}
		views[position] = list
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data": map[string]interface{}{
			"country": country,
			"season":  season,
			"top_n":   topN,
			"saved":   save,
			"count":   groups.Total(),
			"groups":  views,
		},
	})
}

// GetSaved returns a previously saved selection.
// GET /api/selection/saved?country=Spain&season=2023
func (h *SelectionHandler) GetSaved(w http.ResponseWriter, r *http.Request) {
	if h.repo == nil {
		respondError(w, http.StatusServiceUnavailable, "database not configured")
		return
	}

	country := r.URL.Query().Get("country")
	season := r.URL.Query().Get("season")
	if country == "" || season == "" {
		respondError(w, http.StatusBadRequest, "country and season are required")
		return
	}

	saved, err := h.repo.GetSelection(r.Context(), country, season)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    saved,
	})
}

// ListSeasons lists the stored selections.
// GET /api/selection/seasons
func (h *SelectionHandler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	if h.repo == nil {
		respondError(w, http.StatusServiceUnavailable, "database not configured")
		return
	}

	seasons, err := h.repo.ListSeasons(r.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list seasons")
		respondError(w, http.StatusInternalServerError, "Failed to list seasons")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data": map[string]interface{}{
			"count":   len(seasons),
			"seasons": seasons,
		},
	})
}

// GetTeamForm summarizes a team's recent results.
// GET /api/teams/{id}/form?season=2023&last=10
func (h *SelectionHandler) GetTeamForm(w http.ResponseWriter, r *http.Request) {
	teamID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid team id")
		return
	}

	season := r.URL.Query().Get("season")
	if season == "" {
		respondError(w, http.StatusBadRequest, "season is required")
		return
	}

	last := 10
	if raw := r.URL.Query().Get("last"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondError(w, http.StatusBadRequest, "last must be a positive integer")
			return
		}
		last = n
	}

	form, err := scout.TeamForm(r.Context(), h.fixtures, teamID, season, last)
	if err != nil {
		h.logger.WithError(err).WithField("team_id", teamID).Error("Team form fetch failed")
		respondError(w, http.StatusBadGateway, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    form,
	})
}

// selectionErrorStatus maps pipeline failures to HTTP status codes.
func selectionErrorStatus(err error) int {
	switch {
	case errors.Is(err, apifootball.ErrDataUnavailable),
		errors.Is(err, apifootball.ErrPlayerNotFound):
		return http.StatusNotFound
	case errors.Is(err, squad.ErrMalformedRecord):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
