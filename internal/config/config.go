// Package config loads showdown settings from an HCL file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// ErrInvalidConfig is returned when a decoded configuration fails validation
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the complete configuration
type Config struct {
	LogLevel   string              `hcl:"log_level,optional"`
	Seed       int64               `hcl:"seed,optional"` // 0 derives a seed from the clock
	Simulation *SimulationSettings `hcl:"simulation,block"`
	Server     *ServerSettings     `hcl:"server,block"`
	Display    *DisplaySettings    `hcl:"display,block"`
}

// SimulationSettings configures the simulate and audit commands
type SimulationSettings struct {
	Hands   int    `hcl:"hands,optional"`
	Workers int    `hcl:"workers,optional"`
	Timeout string `hcl:"timeout,optional"`
	Audit   bool   `hcl:"audit,optional"`
}

// ServerSettings configures the WebSocket service
type ServerSettings struct {
	Address  string `hcl:"address,optional"`
	Port     int    `hcl:"port,optional"`
	Interval string `hcl:"interval,optional"` // broadcast period, "0s" disables
}

// DisplaySettings configures terminal output
type DisplaySettings struct {
	Color   *bool `hcl:"color,optional"`
	Explain bool  `hcl:"explain,optional"` // print every category step
}

// Default returns the default configuration
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load loads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	return decode(file, diags)
}

// Parse decodes configuration from HCL source
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	return decode(file, diags)
}

func decode(file *hcl.File, diags hcl.Diagnostics) (*Config, error) {
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	if c.Simulation == nil {
		c.Simulation = &SimulationSettings{}
	}
	if c.Simulation.Hands == 0 {
		c.Simulation.Hands = 10000
	}

	if c.Server == nil {
		c.Server = &ServerSettings{}
	}
	if c.Server.Address == "" {
		c.Server.Address = "localhost"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Interval == "" {
		c.Server.Interval = "0s"
	}

	if c.Display == nil {
		c.Display = &DisplaySettings{}
	}
	if c.Display.Color == nil {
		color := true
		c.Display.Color = &color
	}
}

// Validate checks the configuration
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.Simulation.Hands < 0 {
		return fmt.Errorf("%w: simulation hands must be positive, got %d", ErrInvalidConfig, c.Simulation.Hands)
	}
	if c.Simulation.Workers < 0 {
		return fmt.Errorf("%w: simulation workers must not be negative, got %d", ErrInvalidConfig, c.Simulation.Workers)
	}
	if _, err := c.SimulationTimeout(); err != nil {
		return err
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: invalid port: %d", ErrInvalidConfig, c.Server.Port)
	}
	if _, err := c.BroadcastInterval(); err != nil {
		return err
	}
	return nil
}

// SimulationTimeout parses the simulation timeout; empty means none
func (c *Config) SimulationTimeout() (time.Duration, error) {
	if c.Simulation.Timeout == "" {
		return 0, nil
	}
	return parseDuration("simulation timeout", c.Simulation.Timeout)
}

// BroadcastInterval parses the server broadcast interval
func (c *Config) BroadcastInterval() (time.Duration, error) {
	return parseDuration("server interval", c.Server.Interval)
}

// ServerAddress returns the full listen address
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}

// Color reports whether output should be coloured
func (c *Config) Color() bool {
	return c.Display.Color == nil || *c.Display.Color
}

func parseDuration(name, s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q: %v", ErrInvalidConfig, name, s, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: %s must not be negative", ErrInvalidConfig, name)
	}
	return d, nil
}
