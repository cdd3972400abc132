package main

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// setupLogger builds the stderr logger. An explicit flag wins over the
// configured level, which wins over info.
func setupLogger(flagLevel, configLevel string) (*log.Logger, error) {
	return newLogger(os.Stderr, flagLevel, configLevel)
}

func newLogger(w io.Writer, flagLevel, configLevel string) (*log.Logger, error) {
	name := flagLevel
	if name == "" {
		name = configLevel
	}
	if name == "" {
		name = "info"
	}

	level, err := log.ParseLevel(name)
	if err != nil {
		return nil, err
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
	}), nil
}

// setupColor forces plain output when requested
func setupColor(noColor bool, logger *log.Logger) {
	if !noColor {
		return
	}
	lipgloss.SetColorProfile(termenv.Ascii)
	if logger != nil {
		logger.SetColorProfile(termenv.Ascii)
	}
}
