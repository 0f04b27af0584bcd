package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	config, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), config)

	assert.Equal(t, "info", config.LogLevel)
	assert.Zero(t, config.Seed)
	assert.Equal(t, 10000, config.Simulation.Hands)
	assert.Equal(t, "localhost:8080", config.ServerAddress())
	assert.True(t, config.Color())

	interval, err := config.BroadcastInterval()
	require.NoError(t, err)
	assert.Zero(t, interval)

	timeout, err := config.SimulationTimeout()
	require.NoError(t, err)
	assert.Zero(t, timeout)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "showdown.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
log_level = "debug"
seed      = 42

simulation {
  hands   = 500
  workers = 3
  timeout = "30s"
  audit   = true
}

server {
  address  = "0.0.0.0"
  port     = 9090
  interval = "2s"
}

display {
  color   = false
  explain = true
}
`), 0o644))

	config, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, int64(42), config.Seed)
	assert.Equal(t, 500, config.Simulation.Hands)
	assert.Equal(t, 3, config.Simulation.Workers)
	assert.True(t, config.Simulation.Audit)
	assert.Equal(t, "0.0.0.0:9090", config.ServerAddress())
	assert.False(t, config.Color())
	assert.True(t, config.Display.Explain)

	timeout, err := config.SimulationTimeout()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, timeout)

	interval, err := config.BroadcastInterval()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, interval)
}

func TestParsePartialFillsDefaults(t *testing.T) {
	config, err := Parse([]byte(`
server {
  port = 7000
}
`), "partial.hcl")
	require.NoError(t, err)

	assert.Equal(t, "info", config.LogLevel)
	assert.Equal(t, "localhost:7000", config.ServerAddress())
	assert.Equal(t, 10000, config.Simulation.Hands)
	assert.True(t, config.Color())
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		invalid bool // fails validation rather than decoding
	}{
		{"syntax error", `server {`, false},
		{"unknown attribute", `colour = true`, false},
		{"wrong type", `seed = "lots"`, false},
		{"bad log level", `log_level = "chatty"`, true},
		{"bad port", "server {\n  port = 70000\n}", true},
		{"bad interval", "server {\n  interval = \"soon\"\n}", true},
		{"negative interval", "server {\n  interval = \"-1s\"\n}", true},
		{"bad timeout", "simulation {\n  timeout = \"never\"\n}", true},
		{"negative workers", "simulation {\n  workers = -2\n}", true},
		{"negative hands", "simulation {\n  hands = -5\n}", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "bad.hcl")
			require.Error(t, err)
			if tt.invalid {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NotErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}
