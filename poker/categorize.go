package poker

// HoleCardCategory represents the strength category of hole cards.
type HoleCardCategory string

const (
	CategoryPremium HoleCardCategory = "Premium"
	CategoryStrong  HoleCardCategory = "Strong"
	CategoryMedium  HoleCardCategory = "Medium"
	CategoryWeak    HoleCardCategory = "Weak"
	CategoryTrash   HoleCardCategory = "Trash"
	CategoryUnknown HoleCardCategory = "Unknown"
)

// CategorizeHoleCards provides a simple preflop hand categorization.
// Categories: Premium (JJ+, AK), Strong (TT, AQ/AJ), Medium (77-99, suited
// broadway), Weak (small pairs, suited connectors), Trash (everything else).
func CategorizeHoleCards(card1, card2 Card) HoleCardCategory {
	if card1.Rank > Ace || card2.Rank > Ace {
		return CategoryUnknown
	}

	small, big := card1.Rank, card2.Rank
	if small > big {
		small, big = big, small
	}
	suited := card1.Suit == card2.Suit
	isPair := small == big

	// Premium: JJ+, AK (any suit)
	if isPair && small >= Jack {
		return CategoryPremium
	}
	if small == King && big == Ace {
		return CategoryPremium
	}

	// Strong: TT, AQ, AJ
	if isPair && small == Ten {
		return CategoryStrong
	}
	if big == Ace && (small == Queen || small == Jack) {
		return CategoryStrong
	}

	// Medium: 77-99, suited broadway (KQ, KJ, QJ suited)
	if isPair && small >= Seven && small <= Nine {
		return CategoryMedium
	}
	if suited && small >= Ten {
		return CategoryMedium
	}

	// Weak: small pairs (22-66) or suited connectors
	if isPair && small <= Six {
		return CategoryWeak
	}
	if suited && big-small <= 2 {
		return CategoryWeak
	}

	return CategoryTrash
}

// CategorizeHoleTokens categorizes hole cards given in token form.
// Unparseable input maps to Unknown rather than an error.
func CategorizeHoleTokens(tokens []string) HoleCardCategory {
	if len(tokens) != 2 {
		return CategoryUnknown
	}

	card1, err1 := ParseCard(tokens[0])
	card2, err2 := ParseCard(tokens[1])
	if err1 != nil || err2 != nil {
		return CategoryUnknown
	}

	return CategorizeHoleCards(card1, card2)
}
