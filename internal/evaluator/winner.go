package evaluator

import (
	"fmt"

	"github.com/lox/holdem-showdown/internal/deck"
)

// Side identifies a player in a heads-up showdown
type Side int

const (
	NoSide Side = iota
	PlayerA
	PlayerB
)

func (s Side) String() string {
	switch s {
	case PlayerA:
		return "Player A"
	case PlayerB:
		return "Player B"
	default:
		return "none"
	}
}

// Other returns the opposing side
func (s Side) Other() Side {
	switch s {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	default:
		return NoSide
	}
}

// MarshalText encodes the side as "a", "b" or "none"
func (s Side) MarshalText() ([]byte, error) {
	switch s {
	case PlayerA:
		return []byte("a"), nil
	case PlayerB:
		return []byte("b"), nil
	default:
		return []byte("none"), nil
	}
}

// UnmarshalText decodes "a", "b" or "none"
func (s *Side) UnmarshalText(text []byte) error {
	switch string(text) {
	case "a":
		*s = PlayerA
	case "b":
		*s = PlayerB
	case "none", "":
		*s = NoSide
	default:
		return fmt.Errorf("unknown side %q", text)
	}
	return nil
}

// Decision is the outcome of a showdown. Winner is NoSide only for a tie,
// which can happen only at the high-card stage. HighA and HighB are set
// only when the high-card stage was reached.
//
// Contested is set when both hands matched the winning category. Such hands
// are not compared further: player A takes them by seat.
type Decision struct {
	Winner    Side      `json:"winner"`
	Category  Category  `json:"category"`
	Contested bool      `json:"contested,omitempty"`
	HighA     deck.Card `json:"high_a,omitzero"`
	HighB     deck.Card `json:"high_b,omitzero"`
}

// Tie reports whether neither side won
func (d Decision) Tie() bool {
	return d.Winner == NoSide
}

// Mirror returns the decision as seen with the players' seats swapped. A
// contested decision goes to the seat, so its mirror is won by A again.
func (d Decision) Mirror() Decision {
	m := Decision{
		Winner:    d.Winner.Other(),
		Category:  d.Category,
		Contested: d.Contested,
		HighA:     d.HighB,
		HighB:     d.HighA,
	}
	if d.Contested {
		m.Winner = PlayerA
	}
	return m
}

// Message renders the decision as a sentence
func (d Decision) Message() string {
	if d.Tie() {
		return "It's a tie based on High Cards!"
	}
	return fmt.Sprintf("%s wins with %s!", d.Winner, d.Category.Phrase())
}

func (d Decision) String() string {
	return d.Message()
}

// Step is one stage of a showdown: the category examined and which side,
// if any, matched it. The final HighCard step carries both high cards.
type Step struct {
	Category Category
	Matched  Side
	HighA    deck.Card
	HighB    deck.Card
}

// Reporter observes each step Decide takes
type Reporter interface {
	Report(Step)
}

// ReporterFunc adapts a function to a Reporter
type ReporterFunc func(Step)

// Report calls f(step)
func (f ReporterFunc) Report(step Step) {
	f(step)
}

type decideConfig struct {
	reporter Reporter
}

// DecideOption configures Decide
type DecideOption func(*decideConfig)

// WithReporter makes Decide report every step to r
func WithReporter(r Reporter) DecideOption {
	return func(c *decideConfig) {
		c.reporter = r
	}
}

// Decide settles a heads-up showdown. Each player's hole cards are combined
// with the community cards, then categories are walked from strongest to
// weakest: if player A matches a category A wins, otherwise if player B
// matches B wins. When neither matches anything above HighCard the higher
// single high card wins and equal values tie. Hands tied on a category are
// not compared further.
func Decide(holeA, holeB, community []deck.Card, opts ...DecideOption) Decision {
	cfg := decideConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	report := func(s Step) {
		if cfg.reporter != nil {
			cfg.reporter.Report(s)
		}
	}

	handA := combine(holeA, community)
	handB := combine(holeB, community)
	groupA := group(handA)
	groupB := group(handB)

	for _, c := range Categories {
		if c == HighCard {
			break
		}
		switch {
		case groupA.matches(c, len(handA)):
			report(Step{Category: c, Matched: PlayerA})
			return Decision{
				Winner:    PlayerA,
				Category:  c,
				Contested: groupB.matches(c, len(handB)),
			}
		case groupB.matches(c, len(handB)):
			report(Step{Category: c, Matched: PlayerB})
			return Decision{Winner: PlayerB, Category: c}
		default:
			report(Step{Category: c, Matched: NoSide})
		}
	}

	highA := HighestCard(handA)
	highB := HighestCard(handB)
	d := Decision{Category: HighCard, HighA: highA, HighB: highB}
	switch {
	case highA.Value() > highB.Value():
		d.Winner = PlayerA
	case highB.Value() > highA.Value():
		d.Winner = PlayerB
	}
	report(Step{Category: HighCard, Matched: d.Winner, HighA: highA, HighB: highB})
	return d
}
