package squad

import (
	"strconv"
	"strings"

	"github.com/squadpick/backend/internal/apifootball"
)

// Stats is the typed statistics record ratings are computed from. It
// flattens one statistics block of the upstream player record; absent
// fields are zero.
type Stats struct {
	Appearances int
	Minutes     int

	ShotsTotal    int
	ShotsOnTarget int

	Goals    int
	Assists  int
	Conceded int
	Saves    int

	PassesTotal  int
	KeyPasses    int
	PassAccuracy int // percentage

	Tackles       int
	Blocks        int
	Interceptions int

	DuelsTotal int
	DuelsWon   int

	DribblesSucceeded int

	FoulsDrawn     int
	FoulsCommitted int

	YellowCards int
	RedCards    int

	PenaltiesScored int
	PenaltiesMissed int
	PenaltiesSaved  int
}

// statsFromBlock flattens an upstream statistics block.
func statsFromBlock(block apifootball.PlayerStatistics) Stats {
	return Stats{
		Appearances: apifootball.IntVal(block.Games.Appearances),
		Minutes:     apifootball.IntVal(block.Games.Minutes),

		ShotsTotal:    apifootball.IntVal(block.Shots.Total),
		ShotsOnTarget: apifootball.IntVal(block.Shots.On),

		Goals:    apifootball.IntVal(block.Goals.Total),
		Assists:  apifootball.IntVal(block.Goals.Assists),
		Conceded: apifootball.IntVal(block.Goals.Conceded),
		Saves:    apifootball.IntVal(block.Goals.Saves),

		PassesTotal:  apifootball.IntVal(block.Passes.Total),
		KeyPasses:    apifootball.IntVal(block.Passes.Key),
		PassAccuracy: apifootball.IntVal(block.Passes.Accuracy),

		Tackles:       apifootball.IntVal(block.Tackles.Total),
		Blocks:        apifootball.IntVal(block.Tackles.Blocks),
		Interceptions: apifootball.IntVal(block.Tackles.Interceptions),

		DuelsTotal: apifootball.IntVal(block.Duels.Total),
		DuelsWon:   apifootball.IntVal(block.Duels.Won),

		DribblesSucceeded: apifootball.IntVal(block.Dribbles.Success),

		FoulsDrawn:     apifootball.IntVal(block.Fouls.Drawn),
		FoulsCommitted: apifootball.IntVal(block.Fouls.Committed),

		YellowCards: apifootball.IntVal(block.Cards.Yellow),
		RedCards:    apifootball.IntVal(block.Cards.Red),

		PenaltiesScored: apifootball.IntVal(block.Penalty.Scored),
		PenaltiesMissed: apifootball.IntVal(block.Penalty.Missed),
		PenaltiesSaved:  apifootball.IntVal(block.Penalty.Saved),
	}
}

// parseMeasurement extracts the leading integer from strings like
// "185 cm" or "81 kg". Malformed or empty values parse to 0.
func parseMeasurement(value string) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}

	fields := strings.Fields(value)
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 {
		return 0
	}
	return n
}
