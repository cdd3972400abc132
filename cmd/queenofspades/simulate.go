package main

import (
	"fmt"
	"os"

	"github.com/lox/queenofspades/internal/config"
	"github.com/lox/queenofspades/internal/fileutil"
	"github.com/lox/queenofspades/internal/randutil"
	"github.com/lox/queenofspades/internal/simulator"
)

type SimulateCmd struct {
	Config string `kong:"default='queenofspades.hcl',help='HCL config file (missing file means defaults)'"`

	// Overrides for the simulation block
	Players       *int   `kong:"help='Number of players (1-52)'"`
	Games         *int   `kong:"help='Games per batch'"`
	Batches       *int   `kong:"help='Number of batches'"`
	Workers       *int   `kong:"help='Batches run in parallel (0 = all CPUs)'"`
	Seed          *int64 `kong:"help='Master seed (0 for random)'"`
	Deterministic bool   `kong:"help='Use the fixed shuffle for every game'"`

	// Output
	WriteStats string `kong:"help='Write the full report to this file'"`
	Format     string `kong:"help='Report format: json or yaml (default from config or file extension)'"`
	Quiet      bool   `kong:"short='q',help='Hide progress output'"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	c.applyOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := setupLogger(g.LogLevel, cfg.LogLevel)
	if err != nil {
		return err
	}
	setupColor(g.NoColor, logger)

	sim := cfg.Simulation
	seed := sim.Seed
	if seed == 0 {
		seed = randutil.Seed()
	}

	var progress simulator.ProgressReporter = simulator.NopProgress{}
	var monitor *SimpleProgressMonitor
	if !c.Quiet {
		monitor = NewSimpleProgressMonitor(os.Stdout, sim.Batches, sim.Games, nil)
		progress = monitor
	}

	simulation, err := simulator.New(simulator.Config{
		Players:              sim.Players,
		Games:                sim.Games,
		Batches:              sim.Batches,
		Workers:              sim.Workers,
		DeterministicShuffle: sim.DeterministicShuffle,
		Seed:                 seed,
		Logger:               logger,
		Progress:             progress,
	})
	if err != nil {
		return err
	}

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	report, err := simulation.Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}
	if monitor != nil {
		monitor.PrintSummary()
	}

	printReport(os.Stdout, report)

	if cfg.Output.Path != "" {
		if err := fileutil.WriteEncoded(cfg.Output.Path, cfg.Output.Format, report); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		logger.Info("Wrote report", "path", cfg.Output.Path, "format", cfg.Output.Format)
	}
	return nil
}

// applyOverrides copies explicitly set flags over the loaded config
func (c *SimulateCmd) applyOverrides(cfg *config.Config) {
	sim := cfg.Simulation
	if c.Players != nil {
		sim.Players = *c.Players
	}
	if c.Games != nil {
		sim.Games = *c.Games
	}
	if c.Batches != nil {
		sim.Batches = *c.Batches
	}
	if c.Workers != nil {
		sim.Workers = *c.Workers
	}
	if c.Seed != nil {
		sim.Seed = *c.Seed
	}
	if c.Deterministic {
		sim.DeterministicShuffle = true
	}

	if c.WriteStats != "" {
		cfg.Output.Path = c.WriteStats
		if c.Format == "" {
			cfg.Output.Format = fileutil.FormatFromPath(c.WriteStats, cfg.Output.Format)
		}
	}
	if c.Format != "" {
		cfg.Output.Format = c.Format
	}
}
