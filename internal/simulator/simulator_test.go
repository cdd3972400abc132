package simulator

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.WarnLevel})
}

type recordingProgress struct {
	mu        sync.Mutex
	started   []int
	completed map[int]int
	finished  []int
	onGame    func()
}

func (p *recordingProgress) OnBatchStart(batch, _, _ int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.started = append(p.started, batch)
}

func (p *recordingProgress) OnGameComplete(batch, completed, _ int) {
	p.mu.Lock()
	if p.completed == nil {
		p.completed = make(map[int]int)
	}
	p.completed[batch] = completed
	onGame := p.onGame
	p.mu.Unlock()
	if onGame != nil {
		onGame()
	}
}

func (p *recordingProgress) OnBatchComplete(batch int, _ time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.finished = append(p.finished, batch)
}

func TestNew_Validation(t *testing.T) {
	valid := Config{Players: 4, Games: 10, Batches: 2}

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero players", func(c *Config) { c.Players = 0 }},
		{"too many players", func(c *Config) { c.Players = 53 }},
		{"zero games", func(c *Config) { c.Games = 0 }},
		{"zero batches", func(c *Config) { c.Batches = 0 }},
		{"negative workers", func(c *Config) { c.Workers = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			sim, err := New(cfg)
			assert.Nil(t, sim)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
		})
	}

	sim, err := New(valid)
	require.NoError(t, err)
	assert.Positive(t, sim.config.Workers, "zero workers defaults to GOMAXPROCS")
}

func TestRun_Report(t *testing.T) {
	clock := quartz.NewMock(t)
	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	clock.Set(start)

	progress := &recordingProgress{}
	progress.onGame = func() { clock.Advance(time.Millisecond) }

	sim, err := New(Config{
		Players:  4,
		Games:    25,
		Batches:  3,
		Workers:  1,
		Seed:     12345,
		Logger:   testLogger(),
		Clock:    clock,
		Progress: progress,
	})
	require.NoError(t, err)

	report, err := sim.Run(context.Background())
	require.NoError(t, err)

	_, err = uuid.Parse(report.RunID)
	assert.NoError(t, err, "run id must be a uuid")
	assert.Equal(t, start, report.StartedAt)
	assert.Equal(t, 75*time.Millisecond, report.Duration)
	assert.InDelta(t, 1000.0, report.GamesPerSecond(), 1e-6)

	assert.Equal(t, 4, report.Players)
	assert.Equal(t, 25, report.Games)
	assert.Equal(t, 3, report.Batches)
	require.Len(t, report.Results, 3)
	for i, b := range report.Results {
		assert.Equal(t, i, b.Index)
		assert.Equal(t, int64(12345+i), b.Seed)
		assert.Equal(t, 25, b.Games)
		assert.NoError(t, b.Validate())
		assert.Zero(t, b.NoWinner, "four player games always have a winner")
	}

	require.NotNil(t, report.Summary)
	assert.Equal(t, 75, report.Summary.Games)
	assert.Len(t, report.Summary.WinBoxes, 4)
	assert.Positive(t, report.Summary.Turns.Mean)

	assert.ElementsMatch(t, []int{0, 1, 2}, progress.started)
	assert.ElementsMatch(t, []int{0, 1, 2}, progress.finished)
	assert.Equal(t, map[int]int{0: 25, 1: 25, 2: 25}, progress.completed)
}

func TestRun_Reproducible(t *testing.T) {
	run := func(workers int) *Report {
		sim, err := New(Config{
			Players: 5,
			Games:   40,
			Batches: 4,
			Workers: workers,
			Seed:    7,
			Logger:  testLogger(),
		})
		require.NoError(t, err)
		report, err := sim.Run(context.Background())
		require.NoError(t, err)
		return report
	}

	serial := run(1)
	parallel := run(4)
	require.Len(t, parallel.Results, len(serial.Results))
	for i := range serial.Results {
		assert.Equal(t, serial.Results[i], parallel.Results[i], "batch %d", i)
	}
	assert.NotEqual(t, serial.RunID, parallel.RunID)
}

func TestRun_GoldenBatches(t *testing.T) {
	sim, err := New(Config{
		Players: 4,
		Games:   10,
		Batches: 2,
		Workers: 2,
		Seed:    42,
		Logger:  testLogger(),
	})
	require.NoError(t, err)
	report, err := sim.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Results, 2)

	b0 := report.Results[0]
	assert.Equal(t, []int{3, 1, 1, 5}, b0.Wins)
	assert.Equal(t, []int{2, 3, 3, 2}, b0.Losses)
	assert.Equal(t, []int{27, 24, 26, 38, 54, 25, 31, 34, 46, 34}, b0.Turns)

	b1 := report.Results[1]
	assert.Equal(t, []int{4, 0, 0, 6}, b1.Wins)
	assert.Equal(t, []int{2, 3, 4, 1}, b1.Losses)
	assert.Equal(t, []int{38, 24, 29, 28, 31, 32, 35, 29, 47, 39}, b1.Turns)
	assert.Zero(t, report.Summary.NoWinner)
}

func TestRun_DeterministicShuffle(t *testing.T) {
	sim, err := New(Config{
		Players:              3,
		Games:                30,
		Batches:              2,
		DeterministicShuffle: true,
		Seed:                 1,
		Logger:               testLogger(),
	})
	require.NoError(t, err)

	report, err := sim.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, report.DeterministicShuffle)
	assert.Equal(t, 60, report.Summary.Games)
}

func TestRun_SinglePlayerHasNoWinner(t *testing.T) {
	sim, err := New(Config{Players: 1, Games: 5, Batches: 1, Logger: testLogger()})
	require.NoError(t, err)

	report, err := sim.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, report.Results[0].NoWinner)
	assert.Equal(t, []int{5}, report.Results[0].Losses)
	assert.Equal(t, []int{0, 0, 0, 0, 0}, report.Results[0].Turns)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	progress := &recordingProgress{}
	progress.onGame = cancel

	sim, err := New(Config{
		Players:  4,
		Games:    1000,
		Batches:  2,
		Workers:  1,
		Logger:   testLogger(),
		Progress: progress,
	})
	require.NoError(t, err)

	report, err := sim.Run(ctx)
	assert.Nil(t, report)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
