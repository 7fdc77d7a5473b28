package selection

import (
	"testing"

	"github.com/squadpick/backend/internal/squad"
)

// stubPlayer lets ranking tests control ratings directly and count how
// often the rating is recomputed.
type stubPlayer struct {
	id       int
	position squad.Position
	rating   float64
	computes *int
}

func (s stubPlayer) Profile() squad.Profile   { return squad.Profile{ID: s.id} }
func (s stubPlayer) Stats() squad.Stats       { return squad.Stats{} }
func (s stubPlayer) Position() squad.Position { return s.position }

func (s stubPlayer) ComputeRating() float64 {
	if s.computes != nil {
		*s.computes++
	}
	return s.rating
}

func TestRankGroupsAndSorts(t *testing.T) {
	players := []squad.Player{
		stubPlayer{id: 1, position: squad.PositionGoalkeeper, rating: 10},
		stubPlayer{id: 2, position: squad.PositionGoalkeeper, rating: 5},
		stubPlayer{id: 3, position: squad.PositionGoalkeeper, rating: 7},
		stubPlayer{id: 4, position: squad.PositionDefender, rating: 8},
		stubPlayer{id: 5, position: squad.PositionMidfielder, rating: 9},
		stubPlayer{id: 6, position: squad.PositionAttacker, rating: 6},
	}

	groups := Rank(players, 8)

	if len(groups) != 4 {
		t.Fatalf("Expected 4 groups, got %d", len(groups))
	}

	keepers := groups[squad.PositionGoalkeeper]
	wantRatings := []float64{10, 7, 5}
	if len(keepers) != len(wantRatings) {
		t.Fatalf("Expected %d goalkeepers, got %d", len(wantRatings), len(keepers))
	}
	for i, want := range wantRatings {
		if keepers[i].Rating != want {
			t.Errorf("Goalkeeper[%d].Rating = %v, want %v", i, keepers[i].Rating, want)
		}
		if keepers[i].Rank != i+1 {
			t.Errorf("Goalkeeper[%d].Rank = %d, want %d", i, keepers[i].Rank, i+1)
		}
	}

	for _, position := range []squad.Position{
		squad.PositionDefender, squad.PositionMidfielder, squad.PositionAttacker,
	} {
		group := groups[position]
		if len(group) != 1 {
			t.Errorf("Expected 1 player at %s, got %d", position, len(group))
		}
	}

	if groups.Total() != 6 {
		t.Errorf("Total() = %d, want 6", groups.Total())
	}
}

func TestRankStableOnTies(t *testing.T) {
	players := []squad.Player{
		stubPlayer{id: 1, position: squad.PositionMidfielder, rating: 5},
		stubPlayer{id: 2, position: squad.PositionMidfielder, rating: 7},
		stubPlayer{id: 3, position: squad.PositionMidfielder, rating: 5},
		stubPlayer{id: 4, position: squad.PositionMidfielder, rating: 5},
	}

	group := Rank(players, 8)[squad.PositionMidfielder]

	wantIDs := []int{2, 1, 3, 4}
	for i, want := range wantIDs {
		if got := group[i].Player.Profile().ID; got != want {
			t.Errorf("group[%d] = player %d, want %d", i, got, want)
		}
	}
}

func TestRankTruncates(t *testing.T) {
	players := make([]squad.Player, 0, 12)
	for i := 1; i <= 12; i++ {
		players = append(players, stubPlayer{
			id:       i,
			position: squad.PositionDefender,
			rating:   float64(i),
		})
	}

	group := Rank(players, 3)[squad.PositionDefender]

	if len(group) != 3 {
		t.Fatalf("Expected 3 defenders after truncation, got %d", len(group))
	}
	if group[0].Rating != 12 || group[2].Rating != 10 {
		t.Errorf("Kept ratings (%v..%v), want (12..10)", group[0].Rating, group[2].Rating)
	}
}

func TestRankSmallGroupUnmodified(t *testing.T) {
	players := []squad.Player{
		stubPlayer{id: 1, position: squad.PositionAttacker, rating: 4},
		stubPlayer{id: 2, position: squad.PositionAttacker, rating: 6},
	}

	group := Rank(players, 8)[squad.PositionAttacker]
	if len(group) != 2 {
		t.Errorf("Expected 2 attackers, got %d", len(group))
	}
}

func TestRankComputesRatingsOnce(t *testing.T) {
	var computes int
	players := make([]squad.Player, 0, 20)
	for i := 1; i <= 20; i++ {
		players = append(players, stubPlayer{
			id:       i,
			position: squad.PositionMidfielder,
			rating:   float64(i % 5),
			computes: &computes,
		})
	}

	Rank(players, 8)

	if computes != 20 {
		t.Errorf("ComputeRating called %d times, want 20", computes)
	}
}

func TestRankDefaultTopN(t *testing.T) {
	players := make([]squad.Player, 0, 10)
	for i := 1; i <= 10; i++ {
		players = append(players, stubPlayer{
			id:       i,
			position: squad.PositionAttacker,
			rating:   float64(i),
		})
	}

	group := Rank(players, 0)[squad.PositionAttacker]
	if len(group) != DefaultTopN {
		t.Errorf("Expected %d attackers with default top-n, got %d", DefaultTopN, len(group))
	}
}

func TestRankEmptyInput(t *testing.T) {
	groups := Rank(nil, 8)
	if len(groups) != 0 {
		t.Errorf("Expected no groups for empty input, got %d", len(groups))
	}
}
