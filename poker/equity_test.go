package poker

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPreflopStrength(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		cards []string
		want  float64
	}{
		{
			name:  "pocket aces are the maximum",
			cards: []string{"As", "Ah"},
			want:  1.0,
		},
		{
			name:  "pocket kings",
			cards: []string{"Ks", "Kh"},
			want:  0.8,
		},
		{
			name:  "pocket queens",
			cards: []string{"Qs", "Qh"},
			want:  0.7,
		},
		{
			name:  "pocket jacks",
			cards: []string{"Js", "Jh"},
			want:  0.6,
		},
		{
			name:  "pocket deuces floor",
			cards: []string{"2s", "2h"},
			want:  0.25,
		},
		{
			name:  "ace king suited",
			cards: []string{"As", "Ks"},
			want:  0.45,
		},
		{
			name:  "ace king offsuit",
			cards: []string{"As", "Kh"},
			want:  0.35,
		},
		{
			name:  "seven deuce clamps at the bottom",
			cards: []string{"2s", "7h"},
			want:  0.05,
		},
		{
			name:  "order of cards is irrelevant",
			cards: []string{"Ks", "As"},
			want:  0.45,
		},
		{
			name:  "one card defaults neutral",
			cards: []string{"As"},
			want:  0.5,
		},
		{
			name:  "unparseable cards default neutral",
			cards: []string{"xx", "yy"},
			want:  0.5,
		},
		{
			name:  "no cards default neutral",
			cards: nil,
			want:  0.5,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := PreflopStrength(tc.cards)
			if !almostEqual(got, tc.want) {
				t.Errorf("PreflopStrength(%v) = %v, want %v", tc.cards, got, tc.want)
			}
		})
	}
}

func TestPreflopStrengthBounds(t *testing.T) {
	t.Parallel()
	// Exhaustive check over all distinct two-card combos: the score stays
	// inside [0.05, 1.0] and only pocket aces reach 1.0.
	var cards []Card
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, NewCard(rank, suit))
		}
	}

	for i := 0; i < len(cards); i++ {
		for j := i + 1; j < len(cards); j++ {
			strength := PreflopStrength([]string{cards[i].String(), cards[j].String()})
			if strength < 0.05 || strength > 1.0 {
				t.Fatalf("PreflopStrength(%s %s) = %v out of bounds", cards[i], cards[j], strength)
			}
			if strength == 1.0 && cards[i].Rank != Ace {
				t.Fatalf("Only pocket aces should score 1.0, got %s %s", cards[i], cards[j])
			}
		}
	}
}

func TestWinProbabilityPreflop(t *testing.T) {
	t.Parallel()
	holes := [][]string{
		{"2s", "7h"},
		{"As", "Ah"},
		{"Js", "Th"},
	}
	for _, hole := range holes {
		got := WinProbability(Estimate{HoleCards: hole, Opponents: 1})
		want := PreflopStrength(hole)
		if !almostEqual(got, want) {
			t.Errorf("Preflop WinProbability(%v) = %v, want PreflopStrength %v", hole, got, want)
		}
	}
}

func TestWinProbabilityPostflop(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		est  Estimate
		want float64
	}{
		{
			name: "trips on the flop",
			est: Estimate{
				HoleCards:  []string{"As", "Ah"},
				BoardCards: []string{"Ad", "Ks", "2c"},
				Opponents:  1,
			},
			want: 0.68,
		},
		{
			name: "flush on the flop",
			est: Estimate{
				HoleCards:  []string{"Ah", "Th"},
				BoardCards: []string{"7h", "4h", "2h"},
				Opponents:  1,
			},
			want: 0.77,
		},
		{
			name: "zero opponents same as heads up",
			est: Estimate{
				HoleCards:  []string{"As", "Ah"},
				BoardCards: []string{"Ad", "Ks", "2c"},
			},
			want: 0.68,
		},
		{
			name: "three opponents discount",
			est: Estimate{
				HoleCards:  []string{"As", "Ah"},
				BoardCards: []string{"Ad", "Ks", "2c"},
				Opponents:  3,
			},
			want: 0.68 * 0.88 * 0.88,
		},
		{
			name: "floor at one percent",
			est: Estimate{
				HoleCards:  []string{"2s", "7h"},
				BoardCards: []string{"Kd", "9c", "4s"},
				Opponents:  30,
			},
			want: 0.01,
		},
		{
			name: "too few valid cards falls back to neutral",
			est: Estimate{
				HoleCards:  []string{"As", "Kh"},
				BoardCards: []string{"Qd", "xx"},
				Opponents:  1,
			},
			want: 0.5,
		},
		{
			name: "one hole card is neutral",
			est: Estimate{
				HoleCards:  []string{"As"},
				BoardCards: []string{"Ad", "Ks", "2c"},
				Opponents:  1,
			},
			want: 0.5,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := WinProbability(tc.est)
			if !almostEqual(got, tc.want) {
				t.Errorf("WinProbability(%+v) = %v, want %v", tc.est, got, tc.want)
			}
		})
	}
}

func TestWinProbabilityCustomCalibration(t *testing.T) {
	t.Parallel()
	cal := DefaultCalibration()
	cal.CategoryWinRates[ThreeOfAKind] = 0.9
	cal.OpponentDecay = 0.5

	estimator := NewEstimator(cal)
	got := estimator.WinProbability(Estimate{
		HoleCards:  []string{"As", "Ah"},
		BoardCards: []string{"Ad", "Ks", "2c"},
		Opponents:  2,
	})
	if !almostEqual(got, 0.45) {
		t.Errorf("Custom calibration WinProbability = %v, want 0.45", got)
	}
}

func TestDefaultCalibrationTable(t *testing.T) {
	t.Parallel()
	cal := DefaultCalibration()
	want := [9]float64{0.10, 0.38, 0.55, 0.68, 0.72, 0.77, 0.86, 0.93, 0.97}
	if cal.CategoryWinRates != want {
		t.Errorf("CategoryWinRates = %v, want %v", cal.CategoryWinRates, want)
	}
	// The table must be monotonically increasing in category strength.
	for i := 1; i < len(cal.CategoryWinRates); i++ {
		if cal.CategoryWinRates[i] <= cal.CategoryWinRates[i-1] {
			t.Errorf("CategoryWinRates not increasing at %d", i)
		}
	}
}
