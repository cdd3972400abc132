package simulator

import "time"

// ProgressReporter receives progress callbacks during a run. Batches run
// concurrently, so implementations must be safe for concurrent use.
type ProgressReporter interface {
	OnBatchStart(batch, totalBatches, games int)
	OnGameComplete(batch, completed, total int)
	OnBatchComplete(batch int, elapsed time.Duration)
}

// NopProgress ignores every callback
type NopProgress struct{}

func (NopProgress) OnBatchStart(int, int, int) {}
func (NopProgress) OnGameComplete(int, int, int) {}
func (NopProgress) OnBatchComplete(int, time.Duration) {}
