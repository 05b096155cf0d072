// Package poker ranks Texas Hold'em hands and estimates win equity.
//
// The package is a library of pure functions over immutable card values:
// parsing card notation, classifying five-card hands into the nine standard
// categories, picking the best five-card hand from up to seven cards by
// exhaustive search, and layering simple equity heuristics on top. Nothing
// here holds shared state, so everything is safe for concurrent use.
package poker

import (
	"fmt"
	"strings"
)

// Rank represents a card rank (0-12 for deuce through ace).
type Rank uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// rankChars maps ranks to their canonical single-character notation.
const rankChars = "23456789TJQKA"

// String returns the canonical rank character ("2".."9", "T", "J", "Q", "K", "A").
func (r Rank) String() string {
	if r > Ace {
		return "?"
	}
	return string(rankChars[r])
}

// Suit represents a card suit (0-3).
type Suit uint8

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// suitChars maps suits to their canonical lowercase notation.
const suitChars = "shdc"

// String returns the canonical lowercase suit character.
func (s Suit) String() string {
	if s > Clubs {
		return "?"
	}
	return string(suitChars[s])
}

// IsRed returns true if the suit is red (hearts or diamonds).
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Card represents a single playing card.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a card from rank and suit.
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the two-character card notation (e.g. "As", "2c").
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// ParseCard parses a single card token like "As" or "Td".
//
// The final character is the suit, matched case-insensitively against
// "shdc". Everything before it is the rank, matched case-sensitively
// against "23456789TJQKA". Malformed tokens return an error rather than a
// partially-valid card.
func ParseCard(token string) (Card, error) {
	if len(token) < 2 {
		return Card{}, fmt.Errorf("invalid card token %q: too short", token)
	}

	suit, err := parseSuit(token[len(token)-1])
	if err != nil {
		return Card{}, fmt.Errorf("invalid card token %q: %w", token, err)
	}

	rank, err := parseRank(token[:len(token)-1])
	if err != nil {
		return Card{}, fmt.Errorf("invalid card token %q: %w", token, err)
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// ParseCards parses a run of card tokens like "AsKsQsJsTs" or "As Ks".
// Spaces are ignored. Unlike ParseCard, any malformed card fails the whole
// parse since positional recovery is ambiguous.
func ParseCards(s string) ([]Card, error) {
	s = strings.ReplaceAll(s, " ", "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("invalid card string length %d: must be even", len(s))
	}

	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		card, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, fmt.Errorf("card at position %d: %w", i, err)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests).
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards %q: %v", s, err))
	}
	return cards
}

// FormatCards renders cards as space-separated tokens ("As Kh Qd").
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, card := range cards {
		parts[i] = card.String()
	}
	return strings.Join(parts, " ")
}

func parseRank(s string) (Rank, error) {
	// Rank notation is always a single character; longer prefixes (e.g. a
	// "10"-style rank) are never valid and fall through to the error.
	if len(s) == 1 {
		if idx := strings.IndexByte(rankChars, s[0]); idx >= 0 {
			return Rank(idx), nil
		}
	}
	return 0, fmt.Errorf("unknown rank %q", s)
}

func parseSuit(c byte) (Suit, error) {
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	if idx := strings.IndexByte(suitChars, c); idx >= 0 {
		return Suit(idx), nil
	}
	return 0, fmt.Errorf("unknown suit %q", string(c))
}
