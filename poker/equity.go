package poker

import "math"

// Calibration holds the tunable constants behind WinProbability. The
// defaults are hand-tuned heuristics, not simulated equities; callers who
// want different curves can load their own table (see internal/config).
type Calibration struct {
	// CategoryWinRates maps each hand category to an estimated chance of
	// winning at showdown against a single opponent.
	CategoryWinRates [9]float64

	// OpponentDecay is the multiplicative discount applied once per
	// opponent beyond the first.
	OpponentDecay float64

	// MinWinProbability is the floor on any postflop estimate.
	MinWinProbability float64
}

// DefaultCalibration returns the built-in calibration table.
func DefaultCalibration() Calibration {
	return Calibration{
		CategoryWinRates: [9]float64{
			0.10, // High Card
			0.38, // One Pair
			0.55, // Two Pair
			0.68, // Three of a Kind
			0.72, // Straight
			0.77, // Flush
			0.86, // Full House
			0.93, // Four of a Kind
			0.97, // Straight Flush
		},
		OpponentDecay:     0.88,
		MinWinProbability: 0.01,
	}
}

// Estimate describes a win-probability query. Opponents values of zero and
// one both mean heads-up (no discount).
type Estimate struct {
	HoleCards  []string
	BoardCards []string
	Opponents  int
}

// Estimator computes win probabilities using a fixed calibration.
type Estimator struct {
	cal Calibration
}

// NewEstimator creates an estimator with the given calibration.
func NewEstimator(cal Calibration) *Estimator {
	return &Estimator{cal: cal}
}

// WinProbability estimates the chance of winning using the default
// calibration. See Estimator.WinProbability.
func WinProbability(est Estimate) float64 {
	return NewEstimator(DefaultCalibration()).WinProbability(est)
}

// WinProbability estimates the chance of winning the hand, in [0.01, 1.0].
//
// Preflop the estimate is PreflopStrength. Postflop the best five-card
// hand from hole+board is mapped through the category win-rate table and
// discounted per additional opponent. This is a calibration heuristic, not
// a simulation: treat the output as a rough guide, not ground truth.
func (e *Estimator) WinProbability(est Estimate) float64 {
	if len(est.HoleCards) < 2 {
		return 0.5
	}
	if len(est.BoardCards) == 0 {
		return PreflopStrength(est.HoleCards)
	}

	tokens := make([]string, 0, len(est.HoleCards)+len(est.BoardCards))
	tokens = append(tokens, est.HoleCards...)
	tokens = append(tokens, est.BoardCards...)

	prob := 0.5
	if eval, ok := BestHand(tokens); ok {
		prob = e.cal.CategoryWinRates[eval.Category]
	}

	if est.Opponents > 1 {
		prob *= math.Pow(e.cal.OpponentDecay, float64(est.Opponents-1))
	}
	if prob < e.cal.MinWinProbability {
		prob = e.cal.MinWinProbability
	}
	return prob
}

// Preflop scoring constants. Pocket-pair scores are twice the rank value
// with fixed overrides for the four top pairs and a floor for the small
// ones; the full score is normalized against the AA score of 20.
const (
	preflopScaleScore = 20.0
	preflopMinPair    = 5.0
)

var topPairScores = map[Rank]float64{
	Ace:   20,
	King:  16,
	Queen: 14,
	Jack:  12,
}

// PreflopStrength scores two hole cards on [0.05, 1.0], where 1.0 is
// pocket aces. Returns a neutral 0.5 when fewer than two cards parse.
//
// The score rewards high cards, pairs, suitedness and connectedness, and
// penalizes wide gaps. It is a rough hand-strength curve, not an equity.
func PreflopStrength(holeCards []string) float64 {
	cards := make([]Card, 0, 2)
	for _, token := range holeCards {
		if card, err := ParseCard(token); err == nil {
			cards = append(cards, card)
		}
		if len(cards) == 2 {
			break
		}
	}
	if len(cards) < 2 {
		return 0.5
	}

	high, low := cards[0], cards[1]
	if low.Rank > high.Rank {
		high, low = low, high
	}

	if high.Rank == low.Rank {
		score := 2 * float64(high.Rank)
		if override, ok := topPairScores[high.Rank]; ok {
			score = override
		}
		if score < preflopMinPair {
			score = preflopMinPair
		}
		// The pair score tops out at exactly 20, so no upper clamp applies
		// and pocket aces score a full 1.0.
		return score / preflopScaleScore
	}

	gap := float64(high.Rank - low.Rank)
	score := 0.5 * float64(high.Rank)
	if high.Suit == low.Suit {
		score += 2
	}
	if gap <= 1 {
		score += 1
	}
	score -= math.Max(0, gap-3)

	return clamp(score/preflopScaleScore, 0.05, 0.98)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
