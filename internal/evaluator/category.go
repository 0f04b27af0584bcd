package evaluator

import "strings"

// Category is a poker hand category. Lower values are stronger hands, so
// RoyalFlush < StraightFlush < ... < HighCard. The zero value is not a
// valid category.
type Category int

const (
	RoyalFlush Category = iota + 1
	StraightFlush
	FourOfAKind
	FullHouse
	Flush
	Straight
	ThreeOfAKind
	TwoPair
	OnePair
	HighCard
)

// Categories lists every category from strongest to weakest. Evaluation
// walks this order and stops at the first match.
var Categories = [...]Category{
	RoyalFlush,
	StraightFlush,
	FourOfAKind,
	FullHouse,
	Flush,
	Straight,
	ThreeOfAKind,
	TwoPair,
	OnePair,
	HighCard,
}

// String returns the readable name of the category
func (c Category) String() string {
	switch c {
	case RoyalFlush:
		return "Royal Flush"
	case StraightFlush:
		return "Straight Flush"
	case FourOfAKind:
		return "Four of a Kind"
	case FullHouse:
		return "Full House"
	case Flush:
		return "Flush"
	case Straight:
		return "Straight"
	case ThreeOfAKind:
		return "Three of a Kind"
	case TwoPair:
		return "Two Pair"
	case OnePair:
		return "One Pair"
	case HighCard:
		return "High Card"
	default:
		return "Unknown"
	}
}

// Phrase returns the category as it reads after "wins with", e.g.
// "a Full House" or "Two Pair".
func (c Category) Phrase() string {
	switch c {
	case RoyalFlush, StraightFlush, FullHouse, Flush, Straight:
		return "a " + c.String()
	case HighCard:
		return "a higher High Card"
	default:
		return c.String()
	}
}

// Valid reports whether c is one of the ten categories
func (c Category) Valid() bool {
	return c >= RoyalFlush && c <= HighCard
}

// Stronger reports whether c beats other
func (c Category) Stronger(other Category) bool {
	return c < other
}

// MarshalText encodes the category by name
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a category name. Unrecognised names decode to the
// zero value.
func (c *Category) UnmarshalText(text []byte) error {
	*c = 0
	for _, cat := range Categories {
		if cat.String() == string(text) {
			*c = cat
			break
		}
	}
	return nil
}

// CategorySet is a set of matched categories
type CategorySet uint16

// Add returns the set with c included
func (s CategorySet) Add(c Category) CategorySet {
	if !c.Valid() {
		return s
	}
	return s | 1<<uint(c)
}

// Has reports whether c is in the set
func (s CategorySet) Has(c Category) bool {
	return c.Valid() && s&(1<<uint(c)) != 0
}

// Len returns the number of categories in the set
func (s CategorySet) Len() int {
	n := 0
	for _, c := range Categories {
		if s.Has(c) {
			n++
		}
	}
	return n
}

// Best returns the strongest category in the set, or HighCard for an
// empty set.
func (s CategorySet) Best() Category {
	for _, c := range Categories {
		if s.Has(c) {
			return c
		}
	}
	return HighCard
}

// List returns the categories in the set from strongest to weakest
func (s CategorySet) List() []Category {
	var out []Category
	for _, c := range Categories {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

func (s CategorySet) String() string {
	names := make([]string, 0, len(Categories))
	for _, c := range s.List() {
		names = append(names, c.String())
	}
	return "[" + strings.Join(names, ", ") + "]"
}
