package logger

import (
	"io"
	"log/slog"
	"os"
	"sort"
)

// StdLogger routes ports.Logger calls to a text slog handler.
type StdLogger struct {
	logger *slog.Logger
}

// NewStd creates a StdLogger writing to stderr. Debug output requires verbose.
func NewStd(verbose bool) *StdLogger {
	return New(os.Stderr, verbose)
}

// New creates a StdLogger writing to w.
func New(w io.Writer, verbose bool) *StdLogger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return &StdLogger{logger: slog.New(handler)}
}

func (l *StdLogger) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, attrs(fields)...)
}

func (l *StdLogger) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, attrs(fields)...)
}

func (l *StdLogger) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, attrs(fields)...)
}

func (l *StdLogger) Error(msg string, err error, fields map[string]interface{}) {
	args := attrs(fields)
	if err != nil {
		args = append(args, slog.String("error", err.Error()))
	}
	l.logger.Error(msg, args...)
}

// attrs flattens fields in key order so output is stable.
func attrs(fields map[string]interface{}) []any {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]any, 0, len(keys))
	for _, k := range keys {
		out = append(out, slog.Any(k, fields[k]))
	}
	return out
}

// Nop discards everything.
type Nop struct{}

func (Nop) Debug(string, map[string]interface{})        {}
func (Nop) Info(string, map[string]interface{})         {}
func (Nop) Warn(string, map[string]interface{})         {}
func (Nop) Error(string, error, map[string]interface{}) {}
