// Package results saves simulation summaries as JSON files.
package results

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lox/holdem-showdown/internal/evaluator"
	"github.com/lox/holdem-showdown/internal/reference"
	"github.com/lox/holdem-showdown/internal/simulator"
	"github.com/lox/holdem-showdown/internal/statistics"
)

// Summary is the saved form of a simulation
type Summary struct {
	Seed       int64             `json:"seed"`
	Workers    int               `json:"workers"`
	ElapsedMS  int64             `json:"elapsed_ms"`
	Tally      *statistics.Tally `json:"tally"`
	WinRateA   float64           `json:"win_rate_a"`
	WinRateB   float64           `json:"win_rate_b"`
	TieRate    float64           `json:"tie_rate"`
	Categories map[string]int    `json:"categories"`
	Audit      *AuditSummary     `json:"audit,omitempty"`
}

// AuditSummary counts how decisions compared with the full evaluator
type AuditSummary struct {
	Hands         int     `json:"hands"`
	Agreements    int     `json:"agreements"`
	AgreementRate float64 `json:"agreement_rate"`
	Kicker        int     `json:"kicker"`
	Split         int     `json:"split"`
	Reversal      int     `json:"reversal"`
}

// Summarize builds a Summary from a simulation result
func Summarize(seed int64, r *simulator.Result) *Summary {
	s := &Summary{
		Seed:       seed,
		Workers:    r.Workers,
		ElapsedMS:  r.Elapsed.Milliseconds(),
		Tally:      r.Tally,
		WinRateA:   r.Tally.WinRate(evaluator.PlayerA),
		WinRateB:   r.Tally.WinRate(evaluator.PlayerB),
		TieRate:    r.Tally.TieRate(),
		Categories: make(map[string]int, len(evaluator.Categories)),
	}
	for _, c := range evaluator.Categories {
		s.Categories[c.String()] = r.Tally.Categories[c]
	}
	if r.Audit != nil {
		s.Audit = &AuditSummary{
			Hands:         r.Audit.Hands,
			Agreements:    r.Audit.Agreements,
			AgreementRate: r.Audit.AgreementRate(),
			Kicker:        r.Audit.ByKind[reference.Kicker],
			Split:         r.Audit.ByKind[reference.Split],
			Reversal:      r.Audit.ByKind[reference.Reversal],
		}
	}
	return s
}

// Elapsed returns the recorded run time
func (s *Summary) Elapsed() time.Duration {
	return time.Duration(s.ElapsedMS) * time.Millisecond
}

// Save writes the summary to filename. Readers see either the previous
// file or the complete new one, never a partial write.
func Save(filename string, s *Summary) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}
	return writeAtomic(filename, append(data, '\n'), 0o644)
}

// Load reads a summary written by Save
func Load(filename string) (*Summary, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var s Summary
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filename, err)
	}
	return &s, nil
}

func writeAtomic(filename string, data []byte, perm os.FileMode) error {
	// same directory, so the rename never crosses filesystems
	tmp, err := os.CreateTemp(filepath.Dir(filename), filepath.Base(filename)+".tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	defer func() {
		if tmp != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	tmp = nil

	if err := os.Chmod(tmpPath, perm); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpPath, filename); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
