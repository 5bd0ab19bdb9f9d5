package config

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// NewLogger builds a logger writing to w at the level named by
// ASTEROIDS_LOG_LEVEL (info when unset or invalid).
func NewLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(GetEnv("ASTEROIDS_LOG_LEVEL", "info"))
	if err != nil {
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// OpenLogFile returns a logger appending to the file named by
// ASTEROIDS_LOG_FILE, or one that discards everything when it is unset.
// The returned close function is never nil.
func OpenLogFile(prefix string) (*log.Logger, func() error, error) {
	path := GetEnv("ASTEROIDS_LOG_FILE", "")
	if path == "" {
		return NewLogger(io.Discard, prefix), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return NewLogger(f, prefix), f.Close, nil
}
