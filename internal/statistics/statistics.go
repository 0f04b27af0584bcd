package statistics

import (
	"fmt"
	"math"

	"github.com/lox/holdem-showdown/internal/evaluator"
)

// Tally accumulates showdown decisions
type Tally struct {
	Hands     int `json:"hands"`
	WinsA     int `json:"wins_a"`
	WinsB     int `json:"wins_b"`
	Ties      int `json:"ties"`
	Contested int `json:"contested"` // Wins taken by seat because both hands shared the category

	// Categories counts decisions by the category that settled them, indexed
	// by evaluator.Category (index 0 unused)
	Categories [evaluator.HighCard + 1]int `json:"categories"`
}

// Add incorporates a decision into the tally
func (t *Tally) Add(d evaluator.Decision) {
	t.Hands++
	switch d.Winner {
	case evaluator.PlayerA:
		t.WinsA++
	case evaluator.PlayerB:
		t.WinsB++
	default:
		t.Ties++
	}
	if d.Contested {
		t.Contested++
	}
	if d.Category.Valid() {
		t.Categories[d.Category]++
	}
}

// Merge adds another tally's counts into t
func (t *Tally) Merge(other *Tally) {
	t.Hands += other.Hands
	t.WinsA += other.WinsA
	t.WinsB += other.WinsB
	t.Ties += other.Ties
	t.Contested += other.Contested
	for i, n := range other.Categories {
		t.Categories[i] += n
	}
}

// Wins returns how many showdowns side won
func (t *Tally) Wins(side evaluator.Side) int {
	switch side {
	case evaluator.PlayerA:
		return t.WinsA
	case evaluator.PlayerB:
		return t.WinsB
	default:
		return t.Ties
	}
}

// WinRate returns the fraction of showdowns side won. NoSide gives the tie
// rate.
func (t *Tally) WinRate(side evaluator.Side) float64 {
	return t.rate(t.Wins(side))
}

// TieRate returns the fraction of showdowns that tied
func (t *Tally) TieRate() float64 {
	return t.rate(t.Ties)
}

// ContestedRate returns the fraction of showdowns won by seat
func (t *Tally) ContestedRate() float64 {
	return t.rate(t.Contested)
}

// CategoryShare returns the fraction of showdowns settled by c
func (t *Tally) CategoryShare(c evaluator.Category) float64 {
	if !c.Valid() {
		return 0
	}
	return t.rate(t.Categories[c])
}

// StdError returns the standard error of side's win rate
func (t *Tally) StdError(side evaluator.Side) float64 {
	if t.Hands == 0 {
		return 0
	}
	p := t.WinRate(side)
	return math.Sqrt(p * (1 - p) / float64(t.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for side's win
// rate, clamped to [0, 1]
func (t *Tally) ConfidenceInterval95(side evaluator.Side) (float64, float64) {
	p := t.WinRate(side)
	margin := 1.96 * t.StdError(side)
	return math.Max(0, p-margin), math.Min(1, p+margin)
}

// Validate checks that the tally's counts agree with each other
func (t *Tally) Validate() error {
	if t.Hands <= 0 {
		return fmt.Errorf("invalid hands count: %d", t.Hands)
	}

	if outcomes := t.WinsA + t.WinsB + t.Ties; outcomes != t.Hands {
		return fmt.Errorf("outcomes (%d) do not match hands (%d)", outcomes, t.Hands)
	}

	categories := 0
	for _, n := range t.Categories {
		categories += n
	}
	if categories != t.Hands {
		return fmt.Errorf("category total (%d) does not match hands (%d)", categories, t.Hands)
	}

	// Seat wins only ever go to player A
	if t.Contested > t.WinsA {
		return fmt.Errorf("contested wins (%d) exceed player A wins (%d)", t.Contested, t.WinsA)
	}

	if t.Ties > t.Categories[evaluator.HighCard] {
		return fmt.Errorf("ties (%d) exceed high card decisions (%d)", t.Ties, t.Categories[evaluator.HighCard])
	}
	return nil
}

func (t *Tally) rate(n int) float64 {
	if t.Hands == 0 {
		return 0
	}
	return float64(n) / float64(t.Hands)
}
