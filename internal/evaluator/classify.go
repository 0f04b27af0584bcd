package evaluator

import "github.com/lox/holdem-showdown/internal/deck"

// Each predicate reports whether its category is present anywhere among the
// hand's cards. Counts are compared with >= rather than ==, so a stronger
// holding also satisfies the weaker predicates (quads are also trips and a
// pair). Callers that want a single category must walk Categories in order
// and stop at the first match, which is what Best and Decide do.

// IsRoyalFlush reports whether one suit holds 10, Jack, Queen, King and Ace
func IsRoyalFlush(hand []deck.Card) bool {
	g := group(hand)
	return g.royalFlush()
}

// IsStraightFlush reports whether one suit holds five consecutive ranks,
// counting the wheel (A-2-3-4-5)
func IsStraightFlush(hand []deck.Card) bool {
	g := group(hand)
	return g.straightFlush()
}

// IsFourOfAKind reports whether any rank appears four or more times
func IsFourOfAKind(hand []deck.Card) bool {
	g := group(hand)
	return g.fourOfAKind()
}

// IsFullHouse reports whether one rank appears three or more times and a
// different rank at least twice. A second set of trips counts as the pair.
func IsFullHouse(hand []deck.Card) bool {
	g := group(hand)
	return g.fullHouse()
}

// IsFlush reports whether any suit holds five or more cards
func IsFlush(hand []deck.Card) bool {
	g := group(hand)
	return g.flush()
}

// IsStraight reports whether the hand holds five consecutive ranks in any
// suits, counting the wheel
func IsStraight(hand []deck.Card) bool {
	g := group(hand)
	return g.straight()
}

// IsThreeOfAKind reports whether any rank appears three or more times
func IsThreeOfAKind(hand []deck.Card) bool {
	g := group(hand)
	return g.threeOfAKind()
}

// IsTwoPair reports whether at least two distinct ranks appear twice or more
func IsTwoPair(hand []deck.Card) bool {
	g := group(hand)
	return g.twoPair()
}

// IsPair reports whether any rank appears twice or more
func IsPair(hand []deck.Card) bool {
	g := group(hand)
	return g.onePair()
}

// Classify returns every category the hand satisfies. HighCard is included
// for any non-empty hand.
func Classify(hand []deck.Card) CategorySet {
	g := group(hand)
	var set CategorySet
	for _, c := range Categories {
		if g.matches(c, len(hand)) {
			set = set.Add(c)
		}
	}
	return set
}

// Best returns the strongest category the hand satisfies, checking
// categories from strongest to weakest and stopping at the first match.
// HighCard is the fallback.
func Best(hand []deck.Card) Category {
	g := group(hand)
	for _, c := range Categories {
		if c == HighCard {
			break
		}
		if g.matches(c, len(hand)) {
			return c
		}
	}
	return HighCard
}

// Matches reports whether the hand satisfies category c
func Matches(c Category, hand []deck.Card) bool {
	g := group(hand)
	return g.matches(c, len(hand))
}

func (g *grouping) matches(c Category, size int) bool {
	switch c {
	case RoyalFlush:
		return g.royalFlush()
	case StraightFlush:
		return g.straightFlush()
	case FourOfAKind:
		return g.fourOfAKind()
	case FullHouse:
		return g.fullHouse()
	case Flush:
		return g.flush()
	case Straight:
		return g.straight()
	case ThreeOfAKind:
		return g.threeOfAKind()
	case TwoPair:
		return g.twoPair()
	case OnePair:
		return g.onePair()
	case HighCard:
		return size > 0
	default:
		return false
	}
}

func (g *grouping) royalFlush() bool {
	for _, s := range deck.Suits {
		if g.suitRanks[s]&royalMask == royalMask {
			return true
		}
	}
	return false
}

func (g *grouping) straightFlush() bool {
	for _, s := range deck.Suits {
		if hasRun(g.suitRanks[s]) {
			return true
		}
	}
	return false
}

func (g *grouping) fourOfAKind() bool {
	return g.ranksWithAtLeast(4) > 0
}

func (g *grouping) fullHouse() bool {
	trips := g.ranksWithAtLeast(3)
	pairs := g.ranksWithAtLeast(2)
	// pairs includes the trips rank itself, so another rank must also be >= 2
	return trips >= 1 && pairs >= 2
}

func (g *grouping) flush() bool {
	for _, s := range deck.Suits {
		if g.suitCounts[s] >= 5 {
			return true
		}
	}
	return false
}

func (g *grouping) straight() bool {
	return hasRun(g.ranks)
}

func (g *grouping) threeOfAKind() bool {
	return g.ranksWithAtLeast(3) > 0
}

func (g *grouping) twoPair() bool {
	return g.ranksWithAtLeast(2) >= 2
}

func (g *grouping) onePair() bool {
	return g.ranksWithAtLeast(2) > 0
}
