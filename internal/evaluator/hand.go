package evaluator

import (
	"math/bits"

	"github.com/lox/holdem-showdown/internal/deck"
)

// Rank position masks (bit n = rank position n, Two=0 .. Ace=12)
const (
	royalMask uint16 = 0x1F00 // T J Q K A
	wheelMask uint16 = 0x100F // A 2 3 4 5
	runMask   uint16 = 0x1F   // five consecutive positions
)

// grouping is the two views every predicate works from: cards grouped by
// suit into rank-sets, and cards grouped by rank into counts. Cards with an
// unknown rank or suit are left out of the grouping that part would feed.
type grouping struct {
	rankCounts [deck.Ace + 1]int
	suitRanks  [deck.Spades + 1]uint16
	suitCounts [deck.Spades + 1]int
	ranks      uint16
}

func group(hand []deck.Card) grouping {
	var g grouping
	for _, c := range hand {
		pos := c.Rank.Position()
		if pos >= 0 {
			g.rankCounts[c.Rank]++
			g.ranks |= 1 << pos
		}
		if c.Suit.Valid() {
			g.suitCounts[c.Suit]++
			if pos >= 0 {
				g.suitRanks[c.Suit] |= 1 << pos
			}
		}
	}
	return g
}

// ranksWithAtLeast returns how many distinct ranks appear n or more times
func (g *grouping) ranksWithAtLeast(n int) int {
	count := 0
	for _, r := range deck.Ranks {
		if g.rankCounts[r] >= n {
			count++
		}
	}
	return count
}

// hasRun reports whether the rank-set holds five consecutive positions,
// or the wheel (A-2-3-4-5) with the Ace played low.
func hasRun(ranks uint16) bool {
	if bits.OnesCount16(ranks) < 5 {
		return false
	}
	for low := 0; low+4 <= deck.Ace.Position(); low++ {
		if (ranks>>low)&runMask == runMask {
			return true
		}
	}
	return ranks&wheelMask == wheelMask
}

// combine returns a new hand made of hole followed by community. Neither
// input is modified.
func combine(hole, community []deck.Card) []deck.Card {
	hand := make([]deck.Card, 0, len(hole)+len(community))
	hand = append(hand, hole...)
	return append(hand, community...)
}
