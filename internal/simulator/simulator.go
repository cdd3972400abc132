// Package simulator plays many independent games of Queen of Spades and
// tallies who wins, who loses and how long games last.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/lox/queenofspades/internal/game"
	"github.com/lox/queenofspades/internal/randutil"
	"github.com/lox/queenofspades/internal/statistics"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidConfig is returned by New for configurations that cannot run
var ErrInvalidConfig = errors.New("invalid simulation config")

// Config holds configuration for running simulations
type Config struct {
	Players int
	Games   int // per batch
	Batches int
	// Workers caps how many batches run at once. Zero means GOMAXPROCS.
	Workers              int
	DeterministicShuffle bool
	Seed                 int64
	Logger               *log.Logger
	Clock                quartz.Clock
	Progress             ProgressReporter
}

// Simulator runs batches of games
type Simulator struct {
	config   Config
	logger   *log.Logger
	clock    quartz.Clock
	progress ProgressReporter
}

// Report is the outcome of a whole run
type Report struct {
	RunID                string              `json:"run_id" yaml:"run_id"`
	StartedAt            time.Time           `json:"started_at" yaml:"started_at"`
	Duration             time.Duration       `json:"duration_ns" yaml:"duration_ns"`
	Players              int                 `json:"players" yaml:"players"`
	Games                int                 `json:"games_per_batch" yaml:"games_per_batch"`
	Batches              int                 `json:"batches" yaml:"batches"`
	Seed                 int64               `json:"seed" yaml:"seed"`
	DeterministicShuffle bool                `json:"deterministic_shuffle" yaml:"deterministic_shuffle"`
	Summary              *statistics.Summary `json:"summary" yaml:"summary"`
	Results              []*statistics.Batch `json:"results" yaml:"results"`
}

// GamesPerSecond returns the throughput of the run
func (r *Report) GamesPerSecond() float64 {
	if r.Duration <= 0 {
		return 0
	}
	return float64(r.Games*r.Batches) / r.Duration.Seconds()
}

// New validates the configuration and creates a simulator
func New(config Config) (*Simulator, error) {
	if config.Players < 1 || config.Players > game.MaxPlayers {
		return nil, fmt.Errorf("%w: players must be between 1 and %d, got %d",
			ErrInvalidConfig, game.MaxPlayers, config.Players)
	}
	if config.Games < 1 {
		return nil, fmt.Errorf("%w: games must be positive, got %d", ErrInvalidConfig, config.Games)
	}
	if config.Batches < 1 {
		return nil, fmt.Errorf("%w: batches must be positive, got %d", ErrInvalidConfig, config.Batches)
	}
	if config.Workers < 0 {
		return nil, fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidConfig, config.Workers)
	}
	if config.Workers == 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}

	s := &Simulator{
		config:   config,
		logger:   config.Logger,
		clock:    config.Clock,
		progress: config.Progress,
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	if s.clock == nil {
		s.clock = quartz.NewReal()
	}
	if s.progress == nil {
		s.progress = NopProgress{}
	}
	return s, nil
}

// Run plays every batch and returns the report. Batches run concurrently,
// each with its own master RNG seeded from Seed plus the batch index, so a
// run is reproducible regardless of scheduling. Cancelling ctx stops the
// run between games.
func (s *Simulator) Run(ctx context.Context) (*Report, error) {
	start := s.clock.Now()
	runID := uuid.NewString()
	cfg := s.config

	s.logger.Info("Starting simulation",
		"run_id", runID,
		"players", cfg.Players,
		"games", cfg.Games,
		"batches", cfg.Batches,
		"workers", cfg.Workers,
		"seed", cfg.Seed,
		"deterministic", cfg.DeterministicShuffle)

	results := make([]*statistics.Batch, cfg.Batches)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for b := range cfg.Batches {
		g.Go(func() error {
			batch, err := s.runBatch(ctx, b)
			if err != nil {
				return err
			}
			results[b] = batch
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary, err := statistics.Summarize(results)
	if err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	report := &Report{
		RunID:                runID,
		StartedAt:            start,
		Duration:             s.clock.Since(start),
		Players:              cfg.Players,
		Games:                cfg.Games,
		Batches:              cfg.Batches,
		Seed:                 cfg.Seed,
		DeterministicShuffle: cfg.DeterministicShuffle,
		Summary:              summary,
		Results:              results,
	}

	s.logger.Info("Simulation complete",
		"run_id", runID,
		"games", summary.Games,
		"duration", report.Duration,
		"mean_turns", fmt.Sprintf("%.2f", summary.Turns.Mean))
	return report, nil
}

// runBatch plays one batch of games from the batch's master seed
func (s *Simulator) runBatch(ctx context.Context, index int) (*statistics.Batch, error) {
	cfg := s.config
	seed := cfg.Seed + int64(index)
	master := randutil.New(seed)
	batch := statistics.NewBatch(index, seed, cfg.Players)
	logger := s.logger.With("batch", index)

	start := s.clock.Now()
	s.progress.OnBatchStart(index, cfg.Batches, cfg.Games)

	for i := range cfg.Games {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("batch %d stopped after %d games: %w", index, i, err)
		}

		gameSeed := master.Int64()
		result, err := s.playGame(gameSeed, logger)
		if err != nil {
			return nil, fmt.Errorf("batch %d game %d (seed %d): %w", index, i, gameSeed, err)
		}
		if err := batch.Add(result); err != nil {
			return nil, fmt.Errorf("batch %d game %d (seed %d): %w", index, i, gameSeed, err)
		}
		s.progress.OnGameComplete(index, i+1, cfg.Games)
	}

	elapsed := s.clock.Since(start)
	logger.Debug("Batch complete", "games", batch.Games, "mean_turns", batch.MeanTurns(), "elapsed", elapsed)
	s.progress.OnBatchComplete(index, elapsed)
	return batch, nil
}

func (s *Simulator) playGame(seed int64, logger *log.Logger) (statistics.GameResult, error) {
	g, err := game.New(game.Options{
		Players:              s.config.Players,
		DeterministicShuffle: s.config.DeterministicShuffle,
		Rand:                 randutil.New(seed),
		Logger:               logger,
	})
	if err != nil {
		return statistics.GameResult{}, err
	}

	result := g.Play()
	return statistics.GameResult{
		Seed:   seed,
		Winner: result.Winner,
		Loser:  result.Loser,
		Turns:  result.Turns,
	}, nil
}
