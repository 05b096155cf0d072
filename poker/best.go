package poker

// BestHand finds the strongest five-card hand among 5-7 card tokens.
//
// Tokens that fail to parse are discarded. If fewer than five valid cards
// remain (or more than seven, which the evaluator does not support) the
// second return value is false. Every C(n,5) combination is classified and
// the maximum under Compare is returned. With at most 21 combinations the
// exhaustive search is deliberately simple; a closed-form 7-card evaluator
// would be faster but much easier to get wrong.
func BestHand(tokens []string) (Evaluation, bool) {
	cards := make([]Card, 0, len(tokens))
	for _, token := range tokens {
		if card, err := ParseCard(token); err == nil {
			cards = append(cards, card)
		}
	}
	return bestOfCards(cards)
}

// BestHandCards is BestHand over already-parsed cards.
func BestHandCards(cards []Card) (Evaluation, bool) {
	return bestOfCards(cards)
}

// bestOfCards enumerates five-card combinations in ascending index order.
// The first combination seeds the running best; later combinations replace
// it only when strictly greater, so among tied hands the earliest
// combination wins.
func bestOfCards(cards []Card) (Evaluation, bool) {
	n := len(cards)
	if n < 5 || n > 7 {
		return Evaluation{}, false
	}

	var best Evaluation
	first := true
	for a := 0; a < n-4; a++ {
		for b := a + 1; b < n-3; b++ {
			for c := b + 1; c < n-2; c++ {
				for d := c + 1; d < n-1; d++ {
					for e := d + 1; e < n; e++ {
						eval := Classify([]Card{cards[a], cards[b], cards[c], cards[d], cards[e]})
						if first || Compare(eval, best) > 0 {
							best = eval
							first = false
						}
					}
				}
			}
		}
	}
	return best, true
}
