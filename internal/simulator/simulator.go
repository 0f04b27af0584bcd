package simulator

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem-showdown/internal/dealer"
	"github.com/lox/holdem-showdown/internal/deck"
	"github.com/lox/holdem-showdown/internal/randutil"
	"github.com/lox/holdem-showdown/internal/reference"
	"github.com/lox/holdem-showdown/internal/statistics"
)

// Config holds configuration for running simulations
type Config struct {
	Hands   int
	Workers int // defaults to the CPU count, capped at 8
	Seed    int64
	Timeout time.Duration // zero means no limit
	Audit   bool          // also check every showdown against the full evaluator
	Logger  *log.Logger
	Clock   quartz.Clock
}

// Result is the outcome of a simulation
type Result struct {
	Tally   *statistics.Tally
	Audit   *reference.Report // nil unless Config.Audit is set
	Workers int
	Elapsed time.Duration
}

// Simulator deals and settles showdowns in bulk
type Simulator struct {
	config Config
	logger *log.Logger
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = min(runtime.NumCPU(), 8)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Logger == nil {
		config.Logger = log.Default()
	}
	return &Simulator{
		config: config,
		logger: config.Logger.WithPrefix("simulator"),
	}
}

type workerResult struct {
	tally statistics.Tally
	audit *reference.Report
}

// Run deals config.Hands showdowns across the workers. Worker w shuffles
// with a stream derived from (Seed, w), so a given seed and worker count
// always produce the same totals.
func (s *Simulator) Run(ctx context.Context) (*Result, error) {
	if s.config.Hands <= 0 {
		return nil, fmt.Errorf("invalid hands count: %d", s.config.Hands)
	}
	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	start := s.config.Clock.Now()
	workers := min(s.config.Workers, s.config.Hands)
	perWorker := s.config.Hands / workers
	remainder := s.config.Hands % workers

	s.logger.Info("Starting simulation", "hands", s.config.Hands, "workers", workers, "seed", s.config.Seed)

	g, ctx := errgroup.WithContext(ctx)
	results := make([]workerResult, workers)

	for w := range workers {
		hands := perWorker
		if w < remainder {
			hands++
		}
		seed := randutil.Derive(s.config.Seed, w)

		g.Go(func() error {
			res, err := s.runWorker(ctx, w, hands, seed)
			if err != nil {
				return fmt.Errorf("worker %d: %w", w, err)
			}
			results[w] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{
		Tally:   &statistics.Tally{},
		Workers: workers,
	}
	if s.config.Audit {
		result.Audit = reference.NewReport(reference.DefaultExamples)
	}
	for _, res := range results {
		result.Tally.Merge(&res.tally)
		if result.Audit != nil {
			result.Audit.Merge(res.audit)
		}
	}

	if err := result.Tally.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	result.Elapsed = s.config.Clock.Since(start)

	s.logger.Info("Simulation complete",
		"hands", result.Tally.Hands,
		"a", result.Tally.WinsA,
		"b", result.Tally.WinsB,
		"ties", result.Tally.Ties,
		"elapsed", result.Elapsed)
	return result, nil
}

func (s *Simulator) runWorker(ctx context.Context, id, hands int, seed int64) (workerResult, error) {
	var res workerResult
	if s.config.Audit {
		res.audit = reference.NewReport(reference.DefaultExamples)
	}

	logger := s.logger.With("worker", id)
	dl := dealer.New(logger)
	d := deck.NewDeck(randutil.New(seed))

	for hand := range hands {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		d.Reset()
		showdown, err := dl.Deal(d)
		if err != nil {
			return res, fmt.Errorf("hand %d: %w", hand+1, err)
		}
		res.tally.Add(showdown.Decision)

		if res.audit != nil {
			if err := res.audit.Add(showdown); err != nil {
				return res, fmt.Errorf("auditing hand %d: %w", hand+1, err)
			}
		}
	}

	logger.Debug("Worker finished", "hands", hands)
	return res, nil
}
