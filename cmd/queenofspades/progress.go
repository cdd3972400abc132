package main

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/coder/quartz"
)

// dotsTotal fits a full run in an 80 column terminal
const dotsTotal = 40

// SimpleProgressMonitor prints a row of dots for the whole run, then a
// throughput line. Batches report concurrently when they run in parallel.
type SimpleProgressMonitor struct {
	mu             sync.Mutex
	out            io.Writer
	clock          quartz.Clock
	totalBatches   int
	gamesPerBatch  int
	gamesCompleted int
	dotsPrinted    int
	batchesDone    int
	fastest        time.Duration
	slowest        time.Duration
	startTime      time.Time
}

// NewSimpleProgressMonitor creates a progress monitor. A nil clock uses
// the real one.
func NewSimpleProgressMonitor(out io.Writer, totalBatches, gamesPerBatch int, clock quartz.Clock) *SimpleProgressMonitor {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &SimpleProgressMonitor{
		out:           out,
		clock:         clock,
		totalBatches:  totalBatches,
		gamesPerBatch: gamesPerBatch,
		startTime:     clock.Now(),
	}
}

// OnBatchStart is called when a batch begins
func (m *SimpleProgressMonitor) OnBatchStart(int, int, int) {}

// OnGameComplete is called after each game
func (m *SimpleProgressMonitor) OnGameComplete(int, int, int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.gamesCompleted++
	total := m.totalBatches * m.gamesPerBatch
	if total == 0 {
		total = 1
	}

	// Each dot is 2.5% of the run
	target := m.gamesCompleted * dotsTotal / total
	if target > dotsTotal {
		target = dotsTotal
	}
	for m.dotsPrinted < target {
		fmt.Fprint(m.out, ".")
		m.dotsPrinted++
	}
}

// OnBatchComplete is called when a batch finishes
func (m *SimpleProgressMonitor) OnBatchComplete(_ int, elapsed time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.batchesDone++
	if m.batchesDone == 1 || elapsed < m.fastest {
		m.fastest = elapsed
	}
	if elapsed > m.slowest {
		m.slowest = elapsed
	}
}

// PrintSummary prints the final throughput line
func (m *SimpleProgressMonitor) PrintSummary() {
	m.mu.Lock()
	defer m.mu.Unlock()

	duration := m.clock.Since(m.startTime)
	totalGames := m.totalBatches * m.gamesPerBatch
	gamesPerSec := 0.0
	if duration > 0 {
		gamesPerSec = float64(totalGames) / duration.Seconds()
	}

	fmt.Fprintf(m.out, " ✓\nCompleted %d games in %.1f seconds (%.0f games/sec)\n",
		totalGames, duration.Seconds(), gamesPerSec)
	if m.batchesDone > 0 {
		fmt.Fprintf(m.out, "Batches: %d/%d (fastest %.2fs, slowest %.2fs)\n",
			m.batchesDone, m.totalBatches, m.fastest.Seconds(), m.slowest.Seconds())
	}
}
