package main

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds the stderr logger used by pools and the scenario runner.
// JSON output switches to the production encoder.
func newLogger(level string, verbose, jsonFormat bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}

	c := zap.NewDevelopmentConfig()
	if jsonFormat {
		c = zap.NewProductionConfig()
		c.Sampling = nil
	}
	c.Level = zap.NewAtomicLevelAt(lvl)
	c.OutputPaths = []string{"stderr"}
	c.ErrorOutputPaths = []string{"stderr"}
	c.DisableStacktrace = true
	return c.Build()
}
