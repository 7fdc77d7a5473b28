package squad

import (
	"fmt"
	"strings"

	"github.com/squadpick/backend/internal/apifootball"
)

// Position is a player's role on the pitch, fixed at construction.
type Position string

const (
	PositionGoalkeeper Position = "Goalkeeper"
	PositionDefender   Position = "Defender"
	PositionMidfielder Position = "Midfielder"
	PositionAttacker   Position = "Attacker"
)

// Positions lists the four variants in formation order.
func Positions() []Position {
	return []Position{
		PositionGoalkeeper,
		PositionDefender,
		PositionMidfielder,
		PositionAttacker,
	}
}

// Profile holds the identity fields shared by all position variants.
type Profile struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Age         int    `json:"age"`
	HeightCM    int    `json:"height_cm"`
	WeightKG    int    `json:"weight_kg"`
	Nationality string `json:"nationality"`
	TeamName    string `json:"team_name"`
	Season      string `json:"season"`
}

// Player is a squad member of exactly one position variant.
// Implementations are immutable once constructed; ComputeRating is a
// pure function of the stored statistics.
type Player interface {
	Profile() Profile
	Stats() Stats
	Position() Position
	ComputeRating() float64
}

// base carries the fields shared by every variant.
type base struct {
	profile Profile
	stats   Stats
}

func (b base) Profile() Profile { return b.profile }
func (b base) Stats() Stats     { return b.stats }

// Goalkeeper weighs saves and penalty stops against goals conceded, with
// a small distribution component. The rating never goes below zero.
type Goalkeeper struct{ base }

func (Goalkeeper) Position() Position { return PositionGoalkeeper }

func (g Goalkeeper) ComputeRating() float64 {
	s := g.stats

	saveScore := float64(s.Saves) * keeperSaveWeight
	penaltyScore := float64(s.PenaltiesSaved) * keeperPenaltySaveWeight
	concededScore := float64(s.Conceded) * keeperConcededWeight
	passScore := float64(s.PassAccuracy) * baseWeights.passAccuracy

	total := saveScore + penaltyScore + concededScore + passScore
	if total < 0 {
		return 0
	}
	return total
}

// Defender weighs defensive actions and passing.
type Defender struct{ base }

func (Defender) Position() Position { return PositionDefender }

func (d Defender) ComputeRating() float64 {
	s := d.stats
	return s.passingScore()*1.3 + s.defensiveScore()*1.5 + s.disciplineScore()
}

// Midfielder weighs passing and creativity, with a defensive component.
type Midfielder struct{ base }

func (Midfielder) Position() Position { return PositionMidfielder }

func (m Midfielder) ComputeRating() float64 {
	s := m.stats
	return s.passingScore()*1.8 + s.creativityScore()*1.5 + s.defensiveScore() + s.disciplineScore()
}

// Attacker weighs shooting, passing and creativity.
type Attacker struct{ base }

func (Attacker) Position() Position { return PositionAttacker }

func (a Attacker) ComputeRating() float64 {
	s := a.stats
	return s.shootingScore()*1.5 + s.passingScore()*1.2 + s.creativityScore()*1.3 + s.disciplineScore()
}

// FromRecord builds the position variant for a raw player record. The
// variant is chosen from the games.position discriminant; anything that
// is not a goalkeeper, defender or midfielder counts as an attacker.
// Returns ErrMalformedRecord when required fields are missing.
func FromRecord(record apifootball.PlayerRecord, season string) (Player, error) {
	if record.Player.ID == 0 || record.Player.Name == "" {
		return nil, fmt.Errorf("player identity missing: %w", ErrMalformedRecord)
	}

	if len(record.Statistics) == 0 {
		return nil, fmt.Errorf("player %d has no statistics: %w", record.Player.ID, ErrMalformedRecord)
	}

	// The first block is the player's main team for the season.
	block := record.Statistics[0]

	position := strings.ToLower(block.Games.Position)
	if position == "" {
		return nil, fmt.Errorf("player %d has no position: %w", record.Player.ID, ErrMalformedRecord)
	}

	b := base{
		profile: Profile{
			ID:          record.Player.ID,
			Name:        record.Player.Name,
			Age:         apifootball.IntVal(record.Player.Age),
			HeightCM:    parseMeasurement(record.Player.Height),
			WeightKG:    parseMeasurement(record.Player.Weight),
			Nationality: record.Player.Nationality,
			TeamName:    block.Team.Name,
			Season:      season,
		},
		stats: statsFromBlock(block),
	}

	switch {
	case strings.Contains(position, "goalkeeper"):
		return Goalkeeper{b}, nil
	case strings.Contains(position, "defender"):
		return Defender{b}, nil
	case strings.Contains(position, "midfielder"):
		return Midfielder{b}, nil
	default:
		return Attacker{b}, nil
	}
}
