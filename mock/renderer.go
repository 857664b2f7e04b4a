package mock

import (
	"context"

	"github.com/fwojciec/docview"
)

var _ docview.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of docview.Renderer.
type Renderer struct {
	RenderFn func(src string) (string, error)
}

func (r *Renderer) Render(src string) (string, error) {
	return r.RenderFn(src)
}

var _ docview.PageRenderer = (*PageRenderer)(nil)

// PageRenderer is a mock implementation of docview.PageRenderer.
type PageRenderer struct {
	RenderPageFn func(ctx context.Context, req docview.RenderRequest) (*docview.Outcome, error)
}

func (r *PageRenderer) RenderPage(ctx context.Context, req docview.RenderRequest) (*docview.Outcome, error) {
	return r.RenderPageFn(ctx, req)
}
