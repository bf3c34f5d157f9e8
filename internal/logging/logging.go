// Package logging builds the process logger from the settings.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/keepercfg/internal/config"
)

// New returns a logger writing to stderr.
func New(cfg config.Logging) *log.Logger {
	return NewWriter(os.Stderr, cfg)
}

// NewWriter returns a logger writing to w. An unknown level falls back to
// info and an unknown format to text.
func NewWriter(w io.Writer, cfg config.Logging) *log.Logger {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          cfg.Prefix,
		Level:           level,
		Formatter:       formatter(cfg.Format),
	})
	return logger
}

func formatter(name string) log.Formatter {
	switch strings.ToLower(name) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
