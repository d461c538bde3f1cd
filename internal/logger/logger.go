// Package logger builds structured Zap loggers. A logger is constructed once
// in main and handed to each component's constructor; there is no
// package-level singleton.
package logger

import (
	"go.uber.org/zap"
)

// New returns a sugared logger for the given environment. "production" uses
// a JSON encoder; everything else uses a human-readable console encoder.
func New(env string) *zap.SugaredLogger {
	var base *zap.Logger
	var err error

	if env == "production" {
		base, err = zap.NewProduction()
	} else {
		base, err = zap.NewDevelopment()
	}

	if err != nil {
		// Fall back to a nop logger rather than failing startup.
		base = zap.NewNop()
	}

	return base.Sugar()
}

// Sync flushes buffered log entries. Call before process exit.
func Sync(log *zap.SugaredLogger) {
	if log != nil {
		_ = log.Sync()
	}
}
