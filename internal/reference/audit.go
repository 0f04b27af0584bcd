package reference

import (
	"github.com/lox/holdem-showdown/internal/dealer"
	"github.com/lox/holdem-showdown/internal/evaluator"
)

// Kind classifies how a decision differs from the full evaluator
type Kind int

const (
	Agree    Kind = iota
	Kicker        // decided a tie; kickers pick a winner
	Split         // decided a winner; the full hands are equal
	Reversal      // decided the other player
)

func (k Kind) String() string {
	switch k {
	case Agree:
		return "agree"
	case Kicker:
		return "kicker"
	case Split:
		return "split"
	case Reversal:
		return "reversal"
	default:
		return "unknown"
	}
}

// Classify compares a decided winner with the full evaluator's
func Classify(decided, full evaluator.Side) Kind {
	switch {
	case decided == full:
		return Agree
	case decided == evaluator.NoSide:
		return Kicker
	case full == evaluator.NoSide:
		return Split
	default:
		return Reversal
	}
}

// Disagreement records one showdown the full evaluator settles differently
type Disagreement struct {
	Showdown dealer.Showdown
	Full     evaluator.Side
	Kind     Kind
}

// DefaultExamples is how many disagreements a Report keeps by default
const DefaultExamples = 5

// Report summarises an audit
type Report struct {
	Hands         int
	Agreements    int
	Disagreements int

	// ByKind and ByCategory count disagreements, indexed by Kind and by
	// the category that settled the decision
	ByKind     [Reversal + 1]int
	ByCategory [evaluator.HighCard + 1]int

	Examples    []Disagreement
	MaxExamples int
}

// NewReport creates an empty report keeping up to examples disagreements
func NewReport(examples int) *Report {
	return &Report{MaxExamples: examples}
}

// Add audits one showdown
func (r *Report) Add(s dealer.Showdown) error {
	full, err := Winner(s)
	if err != nil {
		return err
	}

	r.Hands++
	kind := Classify(s.Decision.Winner, full)
	if kind == Agree {
		r.Agreements++
		return nil
	}

	r.Disagreements++
	r.ByKind[kind]++
	if s.Decision.Category.Valid() {
		r.ByCategory[s.Decision.Category]++
	}
	if len(r.Examples) < r.MaxExamples {
		r.Examples = append(r.Examples, Disagreement{Showdown: s, Full: full, Kind: kind})
	}
	return nil
}

// Merge folds another report into r
func (r *Report) Merge(other *Report) {
	r.Hands += other.Hands
	r.Agreements += other.Agreements
	r.Disagreements += other.Disagreements
	for i, n := range other.ByKind {
		r.ByKind[i] += n
	}
	for i, n := range other.ByCategory {
		r.ByCategory[i] += n
	}
	for _, d := range other.Examples {
		if len(r.Examples) >= r.MaxExamples {
			break
		}
		r.Examples = append(r.Examples, d)
	}
}

// AgreementRate returns the fraction of audited showdowns both evaluators
// settled the same way
func (r *Report) AgreementRate() float64 {
	if r.Hands == 0 {
		return 0
	}
	return float64(r.Agreements) / float64(r.Hands)
}

// Audit checks every showdown against the full evaluator
func Audit(showdowns []dealer.Showdown) (*Report, error) {
	r := NewReport(DefaultExamples)
	for _, s := range showdowns {
		if err := r.Add(s); err != nil {
			return nil, err
		}
	}
	return r, nil
}
