package logging

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/hashicorp/go-hclog"
)

type contextKey string

const loggerKey = contextKey("logger")

var (
	defaultLogger     hclog.Logger
	defaultLoggerOnce sync.Once
)

func DefaultLogger() hclog.Logger {
	defaultLoggerOnce.Do(func() {
		defaultLogger = NewLogger("ratecheck", "info", os.Stderr)
	})
	return defaultLogger
}

// NewLogger builds a named logger, an unknown level falls back to info
func NewLogger(name, level string, w io.Writer) hclog.Logger {
	lvl := hclog.LevelFromString(level)
	if lvl == hclog.NoLevel {
		lvl = hclog.Info
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   name,
		Level:  lvl,
		Output: w,
	})
}

func WithLogger(ctx context.Context, logger hclog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

func FromContext(ctx context.Context) hclog.Logger {
	if logger, ok := ctx.Value(loggerKey).(hclog.Logger); ok {
		return logger
	}
	return DefaultLogger()
}
