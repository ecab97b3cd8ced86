// Package logging builds the zap backed logr.Logger shared by the solver tools.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels passed to logr's V.
const (
	DEBUG = 1
	TRACE = 2
)

// ParseLevel maps "info", "debug" and "trace" to a zap level.
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(level) {
	case "", "info":
		return zapcore.InfoLevel, nil
	case "debug":
		return zapcore.Level(-DEBUG), nil
	case "trace":
		return zapcore.Level(-TRACE), nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return 0, fmt.Errorf("unsupported log level: %s", level)
	}
}

// NewLogger creates a logger writing to stderr. Development loggers use the console
// encoder, others emit JSON.
func NewLogger(level string, development bool) (logr.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return logr.Discard(), err
	}
	return newLogger(os.Stderr, lvl, development), nil
}

func newLogger(w io.Writer, lvl zapcore.Level, development bool) logr.Logger {
	var encoder zapcore.Encoder
	if development {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(cfg)
	} else {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), zap.NewAtomicLevelAt(lvl))
	return zapr.NewLogger(zap.New(core))
}

// NewTestLogger returns a trace level development logger writing to w, typically
// GinkgoWriter or a testing buffer.
func NewTestLogger(w io.Writer) logr.Logger {
	return newLogger(w, zapcore.Level(-TRACE), true)
}
