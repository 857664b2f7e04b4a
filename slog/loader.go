package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docview"
)

// Ensure LoggingTextLoader implements docview.TextLoader.
var _ docview.TextLoader = (*LoggingTextLoader)(nil)

// LoggingTextLoader wraps a TextLoader with debug logging.
type LoggingTextLoader struct {
	next   docview.TextLoader
	logger *slog.Logger
}

// NewLoggingTextLoader creates a new LoggingTextLoader.
func NewLoggingTextLoader(next docview.TextLoader, logger *slog.Logger) *LoggingTextLoader {
	return &LoggingTextLoader{next: next, logger: logger}
}

// LoadText delegates to the wrapped loader and logs the read.
func (l *LoggingTextLoader) LoadText(ctx context.Context, p string) (text string, err error) {
	defer func(begin time.Time) {
		l.logger.Debug("load text",
			"path", p,
			"bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.LoadText(ctx, p)
}
