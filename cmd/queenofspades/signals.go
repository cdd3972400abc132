package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/charmbracelet/log"
)

// setupSignalHandler creates a context that is cancelled on interrupt
// signals. A second signal exits immediately. The returned stop function
// releases the signal handler and must be called when the command returns.
func setupSignalHandler(logger *log.Logger) (context.Context, context.CancelFunc) {
	sigChan := make(chan os.Signal, 2)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	ctx, stop, _ := watchSignals(sigChan, logger, os.Exit)
	return ctx, func() {
		stop()
		signal.Stop(sigChan)
	}
}

// watchSignals cancels the context on the first signal and calls exit(130)
// on the second. The watcher returns once stop is called; finished is
// closed when it has.
func watchSignals(sigs <-chan os.Signal, logger *log.Logger, exit func(int)) (ctx context.Context, stop func(), finished <-chan struct{}) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	exited := make(chan struct{})

	go func() {
		defer close(exited)

		select {
		case sig := <-sigs:
			logger.Warn("Received signal, stopping after the current games", "signal", sig.String())
			cancel()
		case <-done:
			return
		}

		select {
		case <-sigs:
			exit(130)
		case <-done:
		}
	}()

	var once sync.Once
	stop = func() {
		once.Do(func() { close(done) })
		cancel()
	}
	return ctx, stop, exited
}
