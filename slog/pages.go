// Package slog provides logging decorators for docview services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docview"
)

// Ensure LoggingPageRenderer implements docview.PageRenderer.
var _ docview.PageRenderer = (*LoggingPageRenderer)(nil)

// LoggingPageRenderer wraps a PageRenderer with debug logging.
type LoggingPageRenderer struct {
	next   docview.PageRenderer
	logger *slog.Logger
}

// NewLoggingPageRenderer creates a new LoggingPageRenderer.
func NewLoggingPageRenderer(next docview.PageRenderer, logger *slog.Logger) *LoggingPageRenderer {
	return &LoggingPageRenderer{next: next, logger: logger}
}

// RenderPage delegates to the wrapped renderer and logs the decision.
func (r *LoggingPageRenderer) RenderPage(ctx context.Context, req docview.RenderRequest) (out *docview.Outcome, err error) {
	defer func(begin time.Time) {
		outcome := "error"
		if out != nil && out.IsRaw() {
			outcome = "raw"
		} else if out != nil {
			outcome = "page"
		}
		r.logger.Debug("render page",
			"path", req.Path,
			"raw", req.Raw,
			"format", string(req.Format),
			"category", docview.Classify(req.Path).String(),
			"outcome", outcome,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.RenderPage(ctx, req)
}
