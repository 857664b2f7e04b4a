// Package goldmark implements the Markdown transform with
// github.com/yuin/goldmark.
package goldmark

import (
	"bytes"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/fwojciec/docview"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// DefaultStyle is the chroma style used for fenced code blocks.
const DefaultStyle = "github"

// Ensure Renderer implements docview.Renderer at compile time.
var _ docview.Renderer = (*Renderer)(nil)

// Renderer converts Markdown to HTML. It enables the GFM extensions
// (tables, strikethrough, autolinks, task lists) plus footnotes,
// definition lists and superscript. Raw HTML in the source is passed
// through, since documents come from the local filesystem.
type Renderer struct {
	md goldmark.Markdown
}

// Option configures a Renderer.
type Option func(*config)

type config struct {
	style string
}

// WithStyle sets the chroma style used to highlight fenced code blocks.
func WithStyle(style string) Option {
	return func(c *config) {
		c.style = style
	}
}

// NewRenderer creates a new Renderer.
func NewRenderer(opts ...Option) *Renderer {
	c := &config{style: DefaultStyle}
	for _, opt := range opts {
		opt(c)
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Strikethrough,
			extension.Table,
			extension.Linkify,
			extension.TaskList,
			extension.Footnote,
			extension.DefinitionList,
			Superscript,
			highlighting.NewHighlighting(
				highlighting.WithStyle(c.style),
				highlighting.WithFormatOptions(chromahtml.TabWidth(4)),
			),
		),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
	return &Renderer{md: md}
}

// Render converts Markdown src to an HTML fragment.
func (r *Renderer) Render(src string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
