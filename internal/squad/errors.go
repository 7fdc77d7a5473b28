package squad

import "errors"

// ErrMalformedRecord means a player record is missing fields the rating
// formulas require (identity, statistics block or position).
var ErrMalformedRecord = errors.New("squad: malformed player record")
