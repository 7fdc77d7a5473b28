package selection

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/squadpick/backend/internal/squad"
)

// Repository handles selection persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new selection repository
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// SavedPlayer is one persisted row of a squad selection.
type SavedPlayer struct {
	Position    squad.Position `json:"position"`
	Rank        int            `json:"rank"`
	Rating      float64        `json:"rating"`
	PlayerID    int            `json:"player_id"`
	Name        string         `json:"name"`
	Age         int            `json:"age"`
	Nationality string         `json:"nationality"`
	TeamName    string         `json:"team_name"`
}

// SavedSelection is a persisted squad selection for (country, season).
type SavedSelection struct {
	Country   string                           `json:"country"`
	Season    string                           `json:"season"`
	Players   map[squad.Position][]SavedPlayer `json:"players"`
	CreatedAt time.Time                        `json:"created_at"`
}

// SaveSelection replaces the stored selection for (country, season)
// with the given ranked groups.
func (r *Repository) SaveSelection(ctx context.Context, country, season string, groups RankedGroups) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		"DELETE FROM selection.squad_players WHERE country = $1 AND season = $2",
		country, season,
	)
	if err != nil {
		return fmt.Errorf("failed to delete old selection: %w", err)
	}

	query := `
		INSERT INTO selection.squad_players (
			country, season, position, rank, rating,
			player_id, name, age, nationality, team_name
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	for position, group := range groups {
		for _, rp := range group {
			profile := rp.Player.Profile()
			_, err := tx.Exec(ctx, query,
				country, season, string(position), rp.Rank, rp.Rating,
				profile.ID, profile.Name, profile.Age, profile.Nationality, profile.TeamName,
			)
			if err != nil {
				return fmt.Errorf("failed to insert squad player: %w", err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetSelection retrieves the stored selection for (country, season),
// grouped by position and ordered by rank.
func (r *Repository) GetSelection(ctx context.Context, country, season string) (*SavedSelection, error) {
	query := `
		SELECT position, rank, rating,
			player_id, name, age, nationality, team_name, created_at
		FROM selection.squad_players
		WHERE country = $1 AND season = $2
		ORDER BY position, rank ASC
	`

	rows, err := r.pool.Query(ctx, query, country, season)
	if err != nil {
		return nil, fmt.Errorf("failed to query selection: %w", err)
	}
	defer rows.Close()

	result := &SavedSelection{
		Country: country,
		Season:  season,
		Players: make(map[squad.Position][]SavedPlayer),
	}

	for rows.Next() {
		var p SavedPlayer
		var position string
		err := rows.Scan(
			&position, &p.Rank, &p.Rating,
			&p.PlayerID, &p.Name, &p.Age, &p.Nationality, &p.TeamName, &result.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		p.Position = squad.Position(position)
		result.Players[p.Position] = append(result.Players[p.Position], p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	if len(result.Players) == 0 {
		return nil, fmt.Errorf("no selection found for %s %s", country, season)
	}

	return result, nil
}

// ListSeasons returns the (country, season) pairs with a stored
// selection, most recent first.
func (r *Repository) ListSeasons(ctx context.Context) ([]SavedSelection, error) {
	query := `
		SELECT country, season, MAX(created_at)
		FROM selection.squad_players
		GROUP BY country, season
		ORDER BY MAX(created_at) DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query seasons: %w", err)
	}
	defer rows.Close()

	seasons := make([]SavedSelection, 0)
	for rows.Next() {
		var s SavedSelection
		if err := rows.Scan(&s.Country, &s.Season, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		seasons = append(seasons, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return seasons, nil
}
