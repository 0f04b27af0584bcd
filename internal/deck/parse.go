package deck

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCard is returned when compact card notation cannot be parsed
var ErrInvalidCard = errors.New("invalid card")

// ParseCards parses a string of compact card notation into a slice of cards.
// Format: "AsKsQsJsTs" where each card is [Rank][Suit]
// Ranks: A, K, Q, J, T, 9, 8, 7, 6, 5, 4, 3, 2
// Suits: s (spades), h (hearts), d (diamonds), c (clubs)
func ParseCards(s string) ([]Card, error) {
	s = strings.ReplaceAll(s, " ", "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: notation length %d must be even", ErrInvalidCard, len(s))
	}

	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		card, err := ParseCardStrict(s[i : i+2])
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		cards = append(cards, card)
	}

	return cards, nil
}

// ParseCardStrict parses a single two character card such as "Ah" or "Tc"
func ParseCardStrict(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	rank := shortRank(s[0])
	if rank == UnknownRank {
		return Card{}, fmt.Errorf("%w: unknown rank '%c'", ErrInvalidCard, s[0])
	}

	suit := shortSuit(s[1])
	if suit == UnknownSuit {
		return Card{}, fmt.Errorf("%w: unknown suit '%c'", ErrInvalidCard, s[1])
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

func shortRank(c byte) Rank {
	switch c {
	case 'A', 'a':
		return Ace
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'J', 'j':
		return Jack
	case 'T', 't':
		return Ten
	case '9':
		return Nine
	case '8':
		return Eight
	case '7':
		return Seven
	case '6':
		return Six
	case '5':
		return Five
	case '4':
		return Four
	case '3':
		return Three
	case '2':
		return Two
	default:
		return UnknownRank
	}
}

func shortSuit(c byte) Suit {
	switch c {
	case 's', 'S':
		return Spades
	case 'h', 'H':
		return Hearts
	case 'd', 'D':
		return Diamonds
	case 'c', 'C':
		return Clubs
	default:
		return UnknownSuit
	}
}
