package main

import (
	"fmt"
	"os"
	"time"

	"github.com/lox/holdem-showdown/internal/results"
	"github.com/lox/holdem-showdown/internal/simulator"
)

// SimulateCmd deals many showdowns across workers and prints the tally
type SimulateCmd struct {
	Hands   int           `short:"n" help:"Number of showdowns (defaults to the config file)"`
	Workers int           `short:"w" help:"Worker goroutines (defaults to the CPU count)"`
	Timeout time.Duration `help:"Stop after this long"`
	Audit   bool          `help:"Also compare every decision with the full evaluator"`
	Output  string        `short:"o" type:"path" help:"Write a JSON summary to this file"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	e, err := g.setup(os.Stdout)
	if err != nil {
		return err
	}

	cfg, err := simulationConfig(e, c.Hands, c.Workers, c.Timeout, c.Audit || e.cfg.Simulation.Audit)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(e.logger)
	defer cancel()

	e.logger.Info("Starting simulation", "hands", cfg.Hands, "seed", cfg.Seed)
	result, err := simulator.New(cfg).Run(ctx)
	if err != nil {
		return err
	}

	e.printer.Tally(result.Tally, result.Elapsed)
	if result.Audit != nil {
		fmt.Println()
		e.printer.Audit(result.Audit)
	}

	if c.Output != "" {
		if err := results.Save(c.Output, results.Summarize(cfg.Seed, result)); err != nil {
			return err
		}
		e.logger.Info("Saved summary", "file", c.Output)
	}
	return nil
}

// AuditCmd measures how often decisions differ from the full evaluator
type AuditCmd struct {
	Hands   int           `short:"n" help:"Number of showdowns (defaults to the config file)"`
	Workers int           `short:"w" help:"Worker goroutines (defaults to the CPU count)"`
	Timeout time.Duration `help:"Stop after this long"`
}

func (c *AuditCmd) Run(g *Globals) error {
	e, err := g.setup(os.Stdout)
	if err != nil {
		return err
	}

	cfg, err := simulationConfig(e, c.Hands, c.Workers, c.Timeout, true)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(e.logger)
	defer cancel()

	e.logger.Info("Starting audit", "hands", cfg.Hands, "seed", cfg.Seed)
	result, err := simulator.New(cfg).Run(ctx)
	if err != nil {
		return err
	}

	e.printer.Audit(result.Audit)
	return nil
}

// simulationConfig merges command flags over the config file
func simulationConfig(e *env, hands, workers int, timeout time.Duration, audit bool) (simulator.Config, error) {
	settings := e.cfg.Simulation
	if hands == 0 {
		hands = settings.Hands
	}
	if workers == 0 {
		workers = settings.Workers
	}
	if timeout == 0 {
		t, err := e.cfg.SimulationTimeout()
		if err != nil {
			return simulator.Config{}, err
		}
		timeout = t
	}
	if hands < 1 {
		return simulator.Config{}, fmt.Errorf("hands must be positive, got %d", hands)
	}

	return simulator.Config{
		Hands:   hands,
		Workers: workers,
		Seed:    e.seed,
		Timeout: timeout,
		Audit:   audit,
		Logger:  e.logger,
		Clock:   e.clock,
	}, nil
}
