package docview

import (
	"context"
	"errors"
	"fmt"
	"html"
)

// Ensure Dispatcher implements PageRenderer at compile time.
var _ PageRenderer = (*Dispatcher)(nil)

// Dispatcher implements PageRenderer by looking paths up in an Index,
// classifying them and applying the matching transform.
type Dispatcher struct {
	Index            *Index
	Loader           TextLoader
	Markdown         Renderer
	RestructuredText Renderer
}

// RenderPage returns the outcome for req.
func (d *Dispatcher) RenderPage(ctx context.Context, req RenderRequest) (*Outcome, error) {
	if !d.Index.Contains(req.Path) {
		return nil, Errorf(ENOTFOUND, "path %q not found", req.Path)
	}
	if req.Raw {
		return rawOutcome(req.Path), nil
	}

	category := Classify(req.Path)

	// Binary content is never decoded unless a format is forced.
	if req.Format == FormatNone && !category.IsText() {
		return rawOutcome(req.Path), nil
	}

	content, err := d.Loader.LoadText(ctx, req.Path)
	if err != nil {
		return nil, err
	}

	switch req.Format {
	case FormatMarkdown:
		return d.page(req.Path, d.markdown(content)), nil
	case FormatRestructuredText:
		return d.page(req.Path, d.restructuredText(content)), nil
	case FormatPlainText:
		return d.page(req.Path, plainText(content)), nil
	}

	switch category {
	case CategoryMarkdown:
		return d.page(req.Path, d.markdown(content)), nil
	case CategoryRestructuredText:
		return d.page(req.Path, d.restructuredText(content)), nil
	case CategoryText, CategorySpecialIndex:
		return d.page(req.Path, plainText(content)), nil
	case CategoryImage, CategoryAudio, CategoryVideo, CategoryOther:
		return rawOutcome(req.Path), nil
	default:
		return nil, Errorf(EINTERNAL, "unhandled category %d for %q", int(category), req.Path)
	}
}

func (d *Dispatcher) page(p, body string) *Outcome {
	return &Outcome{Path: p, Page: &RenderedPage{Title: p, Body: body}}
}

func (d *Dispatcher) markdown(content string) string {
	out, err := renderSafely(d.Markdown, content)
	if err != nil {
		return degraded("Failed to render file content as Markdown", err)
	}
	return out
}

func (d *Dispatcher) restructuredText(content string) string {
	out, err := renderSafely(d.RestructuredText, content)
	if err != nil {
		return degraded("Failed to render file content as reStructuredText", err)
	}
	return out
}

func rawOutcome(p string) *Outcome {
	return &Outcome{Path: p}
}

// renderSafely calls r.Render and converts a panic inside the renderer into
// an error, so one malformed document cannot take the server down.
func renderSafely(r Renderer, src string) (out string, err error) {
	defer func() {
		if v := recover(); v != nil {
			out, err = "", fmt.Errorf("renderer panic: %v", v)
		}
	}()
	return r.Render(src)
}

// degraded returns an inline error message shown in place of the rendered body.
func degraded(msg string, err error) string {
	text := err.Error()
	var e *Error
	if errors.As(err, &e) {
		text = e.Message
	}
	return plainText(msg + ": " + text)
}

// plainText escapes text for verbatim display.
func plainText(content string) string {
	return "<pre>" + html.EscapeString(content) + "</pre>"
}
