// Package logging builds the logr.Logger used by the cmyk command, backed by
// zap. Verbosity levels follow logr: V(INFO) is always on, V(DEBUG) and
// V(TRACE) are enabled by raising the level.
package logging

import (
	"io"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels for logger.V.
const (
	INFO  = 0
	DEBUG = 1
	TRACE = 2
)

// NewLogger returns a console logger writing to w that emits messages up to
// the given verbosity.
func NewLogger(w io.Writer, verbosity int) logr.Logger {
	if verbosity < INFO {
		verbosity = INFO
	}
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(enc),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(zapcore.Level(-verbosity)),
	)
	return zapr.NewLogger(zap.New(core))
}

// NewTestLogger returns a logger with every level enabled, for tests.
func NewTestLogger(w io.Writer) logr.Logger {
	return NewLogger(w, TRACE)
}
