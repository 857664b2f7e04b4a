// Package html assembles docview pages with html/template.
package html

import (
	_ "embed"
	"html/template"
	"io"
	"net/url"

	"github.com/fwojciec/docview"
)

//go:embed layout.html
var layoutHTML string

// Templates renders the file listing and preview pages. The navigation bar
// is fixed at construction, since the index never changes.
type Templates struct {
	layout *template.Template
	nav    []string
}

type layoutData struct {
	Title   string
	Nav     []string
	Listing bool
	Paths   []string
	Body    template.HTML
}

// NewTemplates parses the layout. nav lists the paths linked from the
// navigation bar, usually the index's special paths.
func NewTemplates(nav []string) (*Templates, error) {
	layout, err := template.New("layout").
		Funcs(template.FuncMap{"pathURL": PathURL}).
		Parse(layoutHTML)
	if err != nil {
		return nil, err
	}
	return &Templates{layout: layout, nav: nav}, nil
}

// RenderIndex writes the page listing every path.
func (t *Templates) RenderIndex(w io.Writer, paths []string) error {
	return t.layout.Execute(w, layoutData{
		Title:   "/",
		Nav:     t.nav,
		Listing: true,
		Paths:   paths,
	})
}

// RenderPage writes page wrapped in the layout with its action links.
// page.Body is trusted HTML and is not escaped.
func (t *Templates) RenderPage(w io.Writer, page *docview.RenderedPage) error {
	return t.layout.Execute(w, layoutData{
		Title: page.Title,
		Nav:   t.nav,
		Body:  template.HTML(page.Body),
	})
}

// PathURL percent-encodes an indexed path for use in a link.
func PathURL(p string) string {
	return (&url.URL{Path: p}).EscapedPath()
}
