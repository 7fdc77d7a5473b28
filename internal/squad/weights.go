package squad

// Rating weights, tuned against La Liga statistics. Grouped the way the
// score helpers combine them; position variants scale whole groups.
var baseWeights = struct {
	// passing
	passTotal    float64
	passKey      float64
	passAccuracy float64

	// shooting
	shotTotal    float64
	shotOnTarget float64
	goal         float64

	// creativity
	assist    float64
	dribble   float64
	foulDrawn float64

	// defensive
	tackle       float64
	interception float64
	duelWon      float64

	// discipline
	foulCommitted float64
	card          float64
}{
	passTotal:    0.0020,
	passKey:      0.030,
	passAccuracy: 0.025,

	shotTotal:    0.0025,
	shotOnTarget: 0.035,
	goal:         0.40,

	assist:    0.40,
	dribble:   0.0030,
	foulDrawn: 0.010,

	tackle:       0.0040,
	interception: 0.0030,
	duelWon:      0.0030,

	foulCommitted: -0.015,
	card:          -0.10,
}

// Goalkeeper-only weights.
const (
	keeperSaveWeight        = 0.035
	keeperPenaltySaveWeight = 0.5
	keeperConcededWeight    = -0.02
)

func (s Stats) passingScore() float64 {
	return float64(s.PassesTotal)*baseWeights.passTotal +
		float64(s.KeyPasses)*baseWeights.passKey +
		float64(s.PassAccuracy)*baseWeights.passAccuracy
}

func (s Stats) shootingScore() float64 {
	return float64(s.ShotsTotal)*baseWeights.shotTotal +
		float64(s.ShotsOnTarget)*baseWeights.shotOnTarget +
		float64(s.Goals)*baseWeights.goal
}

func (s Stats) creativityScore() float64 {
	return float64(s.Assists)*baseWeights.assist +
		float64(s.DribblesSucceeded)*baseWeights.dribble +
		float64(s.FoulsDrawn)*baseWeights.foulDrawn
}

func (s Stats) defensiveScore() float64 {
	return float64(s.Tackles)*baseWeights.tackle +
		float64(s.Interceptions)*baseWeights.interception +
		float64(s.DuelsWon)*baseWeights.duelWon
}

func (s Stats) disciplineScore() float64 {
	return float64(s.FoulsCommitted)*baseWeights.foulCommitted +
		float64(s.YellowCards+s.RedCards)*baseWeights.card
}
