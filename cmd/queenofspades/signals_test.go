package main

import (
	"io"
	"os"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitFor(t *testing.T, ch <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}

func TestWatchSignals_SecondSignalExits(t *testing.T) {
	sigs := make(chan os.Signal, 2)
	codes := make(chan int, 1)
	ctx, stop, finished := watchSignals(sigs, log.New(io.Discard), func(code int) { codes <- code })
	defer stop()

	sigs <- os.Interrupt
	waitFor(t, ctx.Done(), "cancellation")

	sigs <- os.Interrupt
	select {
	case code := <-codes:
		assert.Equal(t, 130, code)
	case <-time.After(2 * time.Second):
		t.Fatal("second signal did not exit")
	}
	waitFor(t, finished, "watcher to return")
}

func TestWatchSignals_StopReleasesWatcher(t *testing.T) {
	t.Run("before any signal", func(t *testing.T) {
		sigs := make(chan os.Signal, 2)
		ctx, stop, finished := watchSignals(sigs, log.New(io.Discard), func(int) {
			t.Error("exit must not be called")
		})

		stop()
		waitFor(t, finished, "watcher to return")
		require.Error(t, ctx.Err())
		stop() // safe to call twice
	})

	t.Run("after the first signal", func(t *testing.T) {
		sigs := make(chan os.Signal, 2)
		ctx, stop, finished := watchSignals(sigs, log.New(io.Discard), func(int) {
			t.Error("exit must not be called")
		})

		sigs <- os.Interrupt
		waitFor(t, ctx.Done(), "cancellation")

		stop()
		waitFor(t, finished, "watcher to return")
	})
}
