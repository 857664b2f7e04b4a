// Package gorst implements the reStructuredText transform with
// github.com/hhatto/gorst.
package gorst

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/fwojciec/docview"
	rst "github.com/hhatto/gorst"
)

// Ensure Renderer implements docview.Renderer at compile time.
var _ docview.Renderer = (*Renderer)(nil)

// Renderer converts reStructuredText to HTML.
//
// The parser does not report syntax errors and may panic on constructs it
// does not implement; callers are expected to recover (docview.Dispatcher
// does).
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render converts reStructuredText src to an HTML fragment.
func (r *Renderer) Render(src string) (string, error) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)

	// Parsers keep per-document state, so one is created per call.
	p := rst.NewParser(nil)
	p.ReStructuredText(strings.NewReader(src), rst.ToHTML(w))

	if err := w.Flush(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
