package selection

import (
	"sort"

	"github.com/squadpick/backend/internal/squad"
)

// DefaultTopN is how many players each position group keeps when the
// caller does not say otherwise.
const DefaultTopN = 8

// RankedPlayer is a player with its computed rating and 1-based rank
// within its position group.
type RankedPlayer struct {
	Rank   int     `json:"rank"`
	Rating float64 `json:"rating"`
	Player squad.Player
}

// RankedGroups maps each position to its ranked players, best first.
type RankedGroups map[squad.Position][]RankedPlayer

// Rank groups players by position, orders each group by rating
// descending and keeps the top n per group. Players with equal ratings
// keep their input order. Ratings are computed exactly once per player.
// The input slice is not modified; positions with no players are absent
// from the result.
func Rank(players []squad.Player, topN int) RankedGroups {
	if topN <= 0 {
		topN = DefaultTopN
	}

	groups := make(RankedGroups)
	for _, p := range players {
		groups[p.Position()] = append(groups[p.Position()], RankedPlayer{
			Rating: p.ComputeRating(),
			Player: p,
		})
	}

	for position, group := range groups {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Rating > group[j].Rating
		})

		if len(group) > topN {
			group = group[:topN]
		}
		for i := range group {
			group[i].Rank = i + 1
		}

		groups[position] = group
	}

	return groups
}

// Total counts the players across all groups.
func (g RankedGroups) Total() int {
	total := 0
	for _, group := range g {
		total += len(group)
	}
	return total
}
