// Package config loads simulation settings from an HCL file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every environment override (QOS_SIMULATION_GAMES)
const EnvPrefix = "qos"

// DefaultFile is the config file read when none is given
const DefaultFile = "queenofspades.hcl"

// Report formats supported by the output block
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config represents the complete configuration
type Config struct {
	LogLevel   string              `hcl:"log_level,optional" envconfig:"log_level"`
	Simulation *SimulationSettings `hcl:"simulation,block" envconfig:"simulation"`
	Output     *OutputSettings     `hcl:"output,block" envconfig:"output"`
}

// SimulationSettings controls the Monte Carlo harness
type SimulationSettings struct {
	Players int `hcl:"players,optional" envconfig:"players"`
	Games   int `hcl:"games,optional" envconfig:"games"`
	Batches int `hcl:"batches,optional" envconfig:"batches"`
	// Workers of 0 uses every available CPU
	Workers int `hcl:"workers,optional" envconfig:"workers"`
	// Seed of 0 picks a fresh random seed for each run
	Seed                 int64 `hcl:"seed,optional" envconfig:"seed"`
	DeterministicShuffle bool  `hcl:"deterministic_shuffle,optional" envconfig:"deterministic_shuffle"`
}

// OutputSettings controls where the report is written. An empty path
// disables the report file.
type OutputSettings struct {
	Path   string `hcl:"path,optional" envconfig:"path"`
	Format string `hcl:"format,optional" envconfig:"format"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Simulation: &SimulationSettings{
			Players: 4,
			Games:   1000,
			Batches: 10,
		},
		Output: &OutputSettings{
			Format: FormatJSON,
		},
	}
}

// Load reads the HCL file, fills in defaults for anything it leaves out and
// applies environment overrides. A missing file yields the defaults (plus
// environment). The result is not validated.
func Load(filename string) (*Config, error) {
	config, err := loadFile(filename)
	if err != nil {
		return nil, err
	}

	if err := envconfig.Process(EnvPrefix, config); err != nil {
		return nil, fmt.Errorf("failed to apply environment: %w", err)
	}
	return config, nil
}

func loadFile(filename string) (*Config, error) {
	if filename == "" {
		return Default(), nil
	}
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

// applyDefaults fills zero values left by a partial file
func (c *Config) applyDefaults() {
	defaults := Default()

	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}

	if c.Simulation == nil {
		c.Simulation = defaults.Simulation
	}
	if c.Simulation.Players == 0 {
		c.Simulation.Players = defaults.Simulation.Players
	}
	if c.Simulation.Games == 0 {
		c.Simulation.Games = defaults.Simulation.Games
	}
	if c.Simulation.Batches == 0 {
		c.Simulation.Batches = defaults.Simulation.Batches
	}

	if c.Output == nil {
		c.Output = defaults.Output
	}
	if c.Output.Format == "" {
		c.Output.Format = defaults.Output.Format
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}

	sim := c.Simulation
	if sim == nil {
		return fmt.Errorf("simulation block is missing")
	}
	if sim.Players < 1 || sim.Players > 52 {
		return fmt.Errorf("simulation: players must be between 1 and 52, got %d", sim.Players)
	}
	if sim.Games < 1 {
		return fmt.Errorf("simulation: games must be positive, got %d", sim.Games)
	}
	if sim.Batches < 1 {
		return fmt.Errorf("simulation: batches must be positive, got %d", sim.Batches)
	}
	if sim.Workers < 0 {
		return fmt.Errorf("simulation: workers must not be negative, got %d", sim.Workers)
	}

	if c.Output == nil {
		return fmt.Errorf("output block is missing")
	}
	switch c.Output.Format {
	case FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("output: unsupported format %q (want %s or %s)", c.Output.Format, FormatJSON, FormatYAML)
	}

	return nil
}

// Level returns the parsed log level
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// HCL renders the configuration back to HCL
func (c *Config) HCL() []byte {
	f := hclwrite.NewEmptyFile()
	gohcl.EncodeIntoBody(c, f.Body())
	return f.Bytes()
}
