package statistics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/holdem-showdown/internal/evaluator"
)

func TestTally_Empty(t *testing.T) {
	var tally Tally

	assert.Zero(t, tally.WinRate(evaluator.PlayerA))
	assert.Zero(t, tally.TieRate())
	assert.Zero(t, tally.ContestedRate())
	assert.Zero(t, tally.CategoryShare(evaluator.Flush))
	assert.Zero(t, tally.StdError(evaluator.PlayerA))

	lo, hi := tally.ConfidenceInterval95(evaluator.PlayerB)
	assert.Zero(t, lo)
	assert.Zero(t, hi)
}

func TestTally_Add(t *testing.T) {
	var tally Tally
	tally.Add(evaluator.Decision{Winner: evaluator.PlayerA, Category: evaluator.Flush})
	tally.Add(evaluator.Decision{Winner: evaluator.PlayerA, Category: evaluator.Flush, Contested: true})
	tally.Add(evaluator.Decision{Winner: evaluator.PlayerB, Category: evaluator.OnePair})
	tally.Add(evaluator.Decision{Category: evaluator.HighCard})

	assert.Equal(t, 4, tally.Hands)
	assert.Equal(t, 2, tally.Wins(evaluator.PlayerA))
	assert.Equal(t, 1, tally.Wins(evaluator.PlayerB))
	assert.Equal(t, 1, tally.Wins(evaluator.NoSide))

	assert.InDelta(t, 0.5, tally.WinRate(evaluator.PlayerA), 1e-9)
	assert.InDelta(t, 0.25, tally.WinRate(evaluator.PlayerB), 1e-9)
	assert.InDelta(t, 0.25, tally.TieRate(), 1e-9)
	assert.InDelta(t, tally.TieRate(), tally.WinRate(evaluator.NoSide), 1e-9)
	assert.InDelta(t, 0.25, tally.ContestedRate(), 1e-9)

	assert.InDelta(t, 0.5, tally.CategoryShare(evaluator.Flush), 1e-9)
	assert.InDelta(t, 0.25, tally.CategoryShare(evaluator.OnePair), 1e-9)
	assert.InDelta(t, 0.25, tally.CategoryShare(evaluator.HighCard), 1e-9)
	assert.Zero(t, tally.CategoryShare(evaluator.RoyalFlush))
	assert.Zero(t, tally.CategoryShare(evaluator.Category(0)))
}

func TestTally_SharesSumToOne(t *testing.T) {
	var tally Tally
	for i, c := range evaluator.Categories {
		for range i + 1 {
			tally.Add(evaluator.Decision{Winner: evaluator.PlayerB, Category: c})
		}
	}

	var total float64
	for _, c := range evaluator.Categories {
		total += tally.CategoryShare(c)
	}
	assert.InDelta(t, 1.0, total, 1e-9)
	assert.InDelta(t, 1.0, tally.WinRate(evaluator.PlayerA)+tally.WinRate(evaluator.PlayerB)+tally.TieRate(), 1e-9)
}

func TestTally_Merge(t *testing.T) {
	var a, b Tally
	a.Add(evaluator.Decision{Winner: evaluator.PlayerA, Category: evaluator.Straight})
	b.Add(evaluator.Decision{Winner: evaluator.PlayerB, Category: evaluator.Straight})
	b.Add(evaluator.Decision{Category: evaluator.HighCard})

	a.Merge(&b)

	assert.Equal(t, 3, a.Hands)
	assert.Equal(t, 1, a.WinsA)
	assert.Equal(t, 1, a.WinsB)
	assert.Equal(t, 1, a.Ties)
	assert.Equal(t, 2, a.Categories[evaluator.Straight])
	assert.Equal(t, 1, a.Categories[evaluator.HighCard])

	// b is unchanged
	assert.Equal(t, 2, b.Hands)
}

func TestTally_ConfidenceInterval(t *testing.T) {
	var tally Tally
	for i := range 100 {
		winner := evaluator.PlayerA
		if i%2 == 1 {
			winner = evaluator.PlayerB
		}
		tally.Add(evaluator.Decision{Winner: winner, Category: evaluator.OnePair})
	}

	assert.InDelta(t, 0.05, tally.StdError(evaluator.PlayerA), 1e-9)
	lo, hi := tally.ConfidenceInterval95(evaluator.PlayerA)
	assert.InDelta(t, 0.5-1.96*0.05, lo, 1e-9)
	assert.InDelta(t, 0.5+1.96*0.05, hi, 1e-9)

	// A side that never wins stays clamped at zero
	lo, hi = tally.ConfidenceInterval95(evaluator.NoSide)
	assert.Zero(t, lo)
	assert.Zero(t, hi)
}

func TestTally_Validate(t *testing.T) {
	var tally Tally
	assert.Error(t, tally.Validate())

	tally.Add(evaluator.Decision{Winner: evaluator.PlayerA, Category: evaluator.Flush, Contested: true})
	tally.Add(evaluator.Decision{Category: evaluator.HighCard})
	assert.NoError(t, tally.Validate())

	broken := tally
	broken.Ties++
	assert.Error(t, broken.Validate())

	broken = tally
	broken.Categories[evaluator.Flush]++
	assert.Error(t, broken.Validate())

	broken = tally
	broken.Contested = 2
	assert.Error(t, broken.Validate())

	broken = tally
	broken.Ties, broken.WinsB = 1, 0
	broken.Categories[evaluator.HighCard], broken.Categories[evaluator.OnePair] = 0, 1
	assert.Error(t, broken.Validate())
}
