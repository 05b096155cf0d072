package poker

import "sort"

// Category enumerates the nine poker hand categories, ordered from weakest
// to strongest. The integer values are a stable contract (0 = high card,
// 8 = straight flush).
type Category int

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// Evaluation is the result of classifying a five-card hand. Tiebreak holds
// the category-specific rank values used to order hands within a category,
// most significant first. Name is the display name, which differs from
// Category.String() only for a royal flush.
type Evaluation struct {
	Category Category
	Tiebreak []int
	Name     string
}

// Classify determines the category and tiebreak key of exactly five cards.
// Any other card count returns the zero Evaluation. Classification is a
// pure function of the card multiset: any permutation of the same five
// cards yields an identical Evaluation.
func Classify(cards []Card) Evaluation {
	if len(cards) != 5 {
		return Evaluation{}
	}

	sorted := make([]Card, len(cards))
	copy(sorted, cards)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Rank > sorted[j].Rank
	})

	flush := true
	for _, card := range sorted[1:] {
		if card.Suit != sorted[0].Suit {
			flush = false
			break
		}
	}

	groups := groupByRank(sorted)
	straightHigh := straightHighCard(sorted, len(groups))
	straight := straightHigh >= 0

	switch {
	case flush && straight:
		name := "Straight Flush"
		if Rank(straightHigh) == Ace {
			name = "Royal Flush"
		}
		return Evaluation{StraightFlush, []int{straightHigh}, name}

	case groups[0].count == 4:
		return Evaluation{
			FourOfAKind,
			[]int{groups[0].rank, groups[1].rank},
			FourOfAKind.String(),
		}

	case groups[0].count == 3 && groups[1].count == 2:
		return Evaluation{
			FullHouse,
			[]int{groups[0].rank, groups[1].rank},
			FullHouse.String(),
		}

	case flush:
		return Evaluation{Flush, ranksDescending(sorted), Flush.String()}

	case straight:
		return Evaluation{Straight, []int{straightHigh}, Straight.String()}

	case groups[0].count == 3:
		return Evaluation{
			ThreeOfAKind,
			[]int{groups[0].rank, groups[1].rank, groups[2].rank},
			ThreeOfAKind.String(),
		}

	case groups[0].count == 2 && groups[1].count == 2:
		return Evaluation{
			TwoPair,
			[]int{groups[0].rank, groups[1].rank, groups[2].rank},
			TwoPair.String(),
		}

	case groups[0].count == 2:
		return Evaluation{
			OnePair,
			[]int{groups[0].rank, groups[1].rank, groups[2].rank, groups[3].rank},
			OnePair.String(),
		}

	default:
		return Evaluation{HighCard, ranksDescending(sorted), HighCard.String()}
	}
}

// Compare orders two evaluations. The result is positive when a beats b,
// negative when b beats a, and zero for a true tie. Only the sign is
// meaningful. It is a total order over evaluations produced by Classify.
func Compare(a, b Evaluation) int {
	if a.Category != b.Category {
		return int(a.Category) - int(b.Category)
	}

	n := len(a.Tiebreak)
	if len(b.Tiebreak) > n {
		n = len(b.Tiebreak)
	}
	for i := 0; i < n; i++ {
		// A missing entry sorts below every valid rank.
		av, bv := -1, -1
		if i < len(a.Tiebreak) {
			av = a.Tiebreak[i]
		}
		if i < len(b.Tiebreak) {
			bv = b.Tiebreak[i]
		}
		if av != bv {
			return av - bv
		}
	}
	return 0
}

// rankGroup is a run of cards sharing a rank.
type rankGroup struct {
	rank  int
	count int
}

// groupByRank buckets cards by rank, ordered by count descending then rank
// descending. This ordering determines the tiebreak sequence for every
// multi-rank category, so it must not change.
func groupByRank(cards []Card) []rankGroup {
	var counts [13]int
	for _, card := range cards {
		counts[card.Rank]++
	}

	groups := make([]rankGroup, 0, len(cards))
	for rank := int(Ace); rank >= int(Two); rank-- {
		if counts[rank] > 0 {
			groups = append(groups, rankGroup{rank: rank, count: counts[rank]})
		}
	}
	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}
		return groups[i].rank > groups[j].rank
	})
	return groups
}

// straightHighCard returns the high-card rank of a straight, or -1 when the
// cards do not form one. Cards must be sorted by rank descending. Only
// hands with five distinct ranks qualify. The wheel (A-5-4-3-2) counts as a
// straight with high card 3 (the five): the ace plays low and the ordinary
// integer comparison in Compare then ranks it below every other straight.
func straightHighCard(sorted []Card, distinct int) int {
	if distinct != 5 {
		return -1
	}
	if sorted[0].Rank-sorted[4].Rank == 4 {
		return int(sorted[0].Rank)
	}
	if sorted[0].Rank == Ace && sorted[1].Rank == Five &&
		sorted[2].Rank == Four && sorted[3].Rank == Three && sorted[4].Rank == Two {
		return int(Five)
	}
	return -1
}

func ranksDescending(sorted []Card) []int {
	ranks := make([]int, len(sorted))
	for i, card := range sorted {
		ranks[i] = int(card.Rank)
	}
	return ranks
}
