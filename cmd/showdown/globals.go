package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdem-showdown/internal/config"
	"github.com/lox/holdem-showdown/internal/deck"
	"github.com/lox/holdem-showdown/internal/display"
	"github.com/lox/holdem-showdown/internal/randutil"
)

// Globals are flags shared by every command
type Globals struct {
	Config   string `short:"c" default:"showdown.hcl" type:"path" help:"HCL configuration file"`
	LogLevel string `enum:",debug,info,warn,error" default:"" help:"Log level, overriding the config file"`
	Seed     int64  `help:"RNG seed, overriding the config file (0 for random)"`
	NoColor  bool   `help:"Disable colour output"`
	Explain  bool   `short:"e" help:"Print every category step"`
}

// env is everything a command needs once flags and config are merged
type env struct {
	cfg     *config.Config
	logger  *log.Logger
	printer *display.Printer
	seed    int64
	clock   quartz.Clock
}

func (g *Globals) setup(out io.Writer) (*env, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if g.Seed != 0 {
		cfg.Seed = g.Seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, _ := log.ParseLevel(cfg.LogLevel) // checked by Validate
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})

	e := &env{
		cfg:    cfg,
		logger: logger,
		seed:   cfg.Seed,
		clock:  quartz.NewReal(),
	}
	if e.seed == 0 {
		e.seed = randutil.Seed(e.clock)
		logger.Debug("Using random seed", "seed", e.seed)
	} else {
		logger.Debug("Using deterministic seed", "seed", e.seed)
	}

	e.printer = display.New(out,
		display.WithColor(cfg.Color() && !g.NoColor),
		display.WithExplain(g.Explain || cfg.Display.Explain),
	)
	return e, nil
}

// signalContext is cancelled on interrupt or SIGTERM
func signalContext(logger *log.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			logger.Info("Received signal, shutting down", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, cancel
}

// parseCards accepts either compact notation ("AsKs") or comma separated
// identifiers ("Ace of Spades, King of Spades")
func parseCards(s string) ([]deck.Card, error) {
	if !strings.Contains(s, " of ") {
		return deck.ParseCards(s)
	}

	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	cards := deck.ParseIdentifiers(parts)
	for i, c := range cards {
		if !c.Valid() {
			return nil, fmt.Errorf("%w: %q", deck.ErrInvalidCard, parts[i])
		}
	}
	return cards, nil
}
