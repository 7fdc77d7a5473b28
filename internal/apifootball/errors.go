package apifootball

import "errors"

var (
	// ErrDataUnavailable means the upstream could not supply the id list
	// for a country and season, or returned it empty.
	ErrDataUnavailable = errors.New("apifootball: data unavailable")

	// ErrPlayerNotFound means a player id has no record for the season.
	ErrPlayerNotFound = errors.New("apifootball: player not found")
)
