package apifootball

import (
	"encoding/json"
	"time"
)

// Paging reports upstream pagination state.
type Paging struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

// envelope is the common wrapper around every API-Sports v3 response.
type envelope struct {
	Get      string          `json:"get"`
	Errors   json.RawMessage `json:"errors"`
	Results  int             `json:"results"`
	Paging   Paging          `json:"paging"`
	Response json.RawMessage `json:"response"`
}

// apiErrors extracts upstream error messages. The API encodes "no errors"
// as an empty array and real errors as an object keyed by parameter name.
func (e *envelope) apiErrors() []string {
	if len(e.Errors) == 0 {
		return nil
	}

	var asMap map[string]string
	if err := json.Unmarshal(e.Errors, &asMap); err == nil {
		msgs := make([]string, 0, len(asMap))
		for key, msg := range asMap {
			msgs = append(msgs, key+": "+msg)
		}
		return msgs
	}

	var asList []string
	if err := json.Unmarshal(e.Errors, &asList); err == nil {
		return asList
	}

	return nil
}

// PlayerProfile is the identity block of a player record.
type PlayerProfile struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Age         *int   `json:"age"`
	Height      string `json:"height"` // e.g. "185 cm"
	Weight      string `json:"weight"` // e.g. "81 kg"
	Nationality string `json:"nationality"`
}

// TeamInfo identifies a team.
type TeamInfo struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// LeagueInfo identifies the competition a statistics block belongs to.
type LeagueInfo struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Season  int    `json:"season"`
}

// GameStats holds appearance data. Numeric fields are pointers because the
// upstream sends null for players without entries.
type GameStats struct {
	Appearances *int   `json:"appearences"` // upstream spelling
	Lineups     *int   `json:"lineups"`
	Minutes     *int   `json:"minutes"`
	Position    string `json:"position"`
	Rating      string `json:"rating"`
}

// ShotStats holds shooting totals.
type ShotStats struct {
	Total *int `json:"total"`
	On    *int `json:"on"`
}

// GoalStats holds scoring totals. Conceded and Saves are goalkeeper fields.
type GoalStats struct {
	Total    *int `json:"total"`
	Conceded *int `json:"conceded"`
	Assists  *int `json:"assists"`
	Saves    *int `json:"saves"`
}

// PassStats holds passing totals; Accuracy is a percentage.
type PassStats struct {
	Total    *int `json:"total"`
	Key      *int `json:"key"`
	Accuracy *int `json:"accuracy"`
}

// TackleStats holds defensive action totals.
type TackleStats struct {
	Total         *int `json:"total"`
	Blocks        *int `json:"blocks"`
	Interceptions *int `json:"interceptions"`
}

// DuelStats holds duel totals.
type DuelStats struct {
	Total *int `json:"total"`
	Won   *int `json:"won"`
}

// DribbleStats holds dribbling totals.
type DribbleStats struct {
	Attempts *int `json:"attempts"`
	Success  *int `json:"success"`
}

// FoulStats holds fouls drawn and committed.
type FoulStats struct {
	Drawn     *int `json:"drawn"`
	Committed *int `json:"committed"`
}

// CardStats holds card counts.
type CardStats struct {
	Yellow    *int `json:"yellow"`
	YellowRed *int `json:"yellowred"`
	Red       *int `json:"red"`
}

// PenaltyStats holds penalty outcomes.
type PenaltyStats struct {
	Won       *int `json:"won"`
	Committed *int `json:"commited"` // upstream spelling
	Scored    *int `json:"scored"`
	Missed    *int `json:"missed"`
	Saved     *int `json:"saved"`
}

// PlayerStatistics is one team/league statistics block of a player record.
type PlayerStatistics struct {
	Team     TeamInfo     `json:"team"`
	League   LeagueInfo   `json:"league"`
	Games    GameStats    `json:"games"`
	Shots    ShotStats    `json:"shots"`
	Goals    GoalStats    `json:"goals"`
	Passes   PassStats    `json:"passes"`
	Tackles  TackleStats  `json:"tackles"`
	Duels    DuelStats    `json:"duels"`
	Dribbles DribbleStats `json:"dribbles"`
	Fouls    FoulStats    `json:"fouls"`
	Cards    CardStats    `json:"cards"`
	Penalty  PenaltyStats `json:"penalty"`
}

// PlayerRecord is one entry of a /players response.
type PlayerRecord struct {
	Player     PlayerProfile      `json:"player"`
	Statistics []PlayerStatistics `json:"statistics"`
}

// teamEntry is one entry of a /teams response.
type teamEntry struct {
	Team TeamInfo `json:"team"`
}

// FixtureInfo identifies a fixture.
type FixtureInfo struct {
	ID   int       `json:"id"`
	Date time.Time `json:"date"`
}

// FixtureSide is one side of a fixture; Winner is null for draws and
// unplayed fixtures.
type FixtureSide struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Winner *bool  `json:"winner"`
}

// FixtureTeams holds both sides of a fixture.
type FixtureTeams struct {
	Home FixtureSide `json:"home"`
	Away FixtureSide `json:"away"`
}

// FixtureGoals holds the full-time score; null until played.
type FixtureGoals struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

// FixtureRecord is one entry of a /fixtures response.
type FixtureRecord struct {
	Fixture FixtureInfo  `json:"fixture"`
	Teams   FixtureTeams `json:"teams"`
	Goals   FixtureGoals `json:"goals"`
}

// IntVal returns the value of a nullable int field, zero when absent.
func IntVal(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
