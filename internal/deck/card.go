package deck

import (
	"fmt"
	"strings"
)

// Suit represents a card suit. Suits carry no value and are only compared
// for equality.
type Suit int

const (
	UnknownSuit Suit = iota
	Hearts
	Diamonds
	Clubs
	Spades
)

// Suits lists the four real suits in deck construction order.
var Suits = [...]Suit{Hearts, Diamonds, Clubs, Spades}

// String returns the suit name used in card identifiers
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "Hearts"
	case Diamonds:
		return "Diamonds"
	case Clubs:
		return "Clubs"
	case Spades:
		return "Spades"
	default:
		return "Unknown"
	}
}

// Symbol returns the unicode pip for the suit
func (s Suit) Symbol() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Valid reports whether s is one of the four real suits
func (s Suit) Valid() bool {
	return s >= Hearts && s <= Spades
}

// Rank represents a card rank. The numeric value of a known rank is its
// poker value, 2 through 14.
type Rank int

const (
	UnknownRank Rank = 0
	Two         Rank = iota + 1
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

// Ranks lists the thirteen ranks from lowest to highest.
var Ranks = [...]Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// String returns the rank name used in card identifiers ("10", "Jack", ...)
func (r Rank) String() string {
	switch r {
	case Ten:
		return "10"
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case Ace:
		return "Ace"
	}
	if r.Valid() {
		return fmt.Sprintf("%d", int(r))
	}
	return "Unknown"
}

// Short returns the single character rank used in compact notation
func (r Rank) Short() string {
	switch r {
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	if r.Valid() {
		return fmt.Sprintf("%d", int(r))
	}
	return "?"
}

// Valid reports whether r is one of the thirteen real ranks
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// Value returns the numeric value of the rank (2-14), or 0 when unknown
func (r Rank) Value() int {
	if !r.Valid() {
		return 0
	}
	return int(r)
}

// Position returns the rank's index in ascending rank order (Two=0,
// Ace=12), or -1 when unknown.
func (r Rank) Position() int {
	if !r.Valid() {
		return -1
	}
	return int(r - Two)
}

// Card represents a playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the card identifier, e.g. "Ace of Spades"
func (c Card) String() string {
	return c.Rank.String() + " of " + c.Suit.String()
}

// Short returns the compact form of the card, e.g. "A♠"
func (c Card) Short() string {
	return c.Rank.Short() + c.Suit.Symbol()
}

// Value returns the numeric rank value of the card (Ace high, 14)
func (c Card) Value() int {
	return c.Rank.Value()
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// Valid reports whether both rank and suit are known
func (c Card) Valid() bool {
	return c.Rank.Valid() && c.Suit.Valid()
}

// MarshalText encodes the card as its "<Rank> of <Suit>" identifier
func (c Card) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a "<Rank> of <Suit>" identifier. Unrecognised parts
// decode to the unknown sentinels rather than failing.
func (c *Card) UnmarshalText(text []byte) error {
	*c = ParseCard(string(text))
	return nil
}

const separator = " of "

// ParseCard parses a "<Rank> of <Suit>" identifier. Parsing is permissive:
// a missing separator or unrecognised rank or suit yields the Unknown
// sentinel for that part.
func ParseCard(s string) Card {
	pos := strings.Index(s, separator)
	if pos < 0 {
		return Card{}
	}
	return Card{
		Rank: rankFromName(s[:pos]),
		Suit: suitFromName(s[pos+len(separator):]),
	}
}

// ParseIdentifiers parses a list of "<Rank> of <Suit>" identifiers
func ParseIdentifiers(ids []string) []Card {
	cards := make([]Card, len(ids))
	for i, id := range ids {
		cards[i] = ParseCard(id)
	}
	return cards
}

// Identifiers formats cards as "<Rank> of <Suit>" identifiers
func Identifiers(cards []Card) []string {
	ids := make([]string, len(cards))
	for i, c := range cards {
		ids[i] = c.String()
	}
	return ids
}

func rankFromName(name string) Rank {
	switch name {
	case "Ace":
		return Ace
	case "King":
		return King
	case "Queen":
		return Queen
	case "Jack":
		return Jack
	case "10":
		return Ten
	case "9":
		return Nine
	case "8":
		return Eight
	case "7":
		return Seven
	case "6":
		return Six
	case "5":
		return Five
	case "4":
		return Four
	case "3":
		return Three
	case "2":
		return Two
	default:
		return UnknownRank
	}
}

func suitFromName(name string) Suit {
	switch name {
	case "Hearts":
		return Hearts
	case "Diamonds":
		return Diamonds
	case "Clubs":
		return Clubs
	case "Spades":
		return Spades
	default:
		return UnknownSuit
	}
}
