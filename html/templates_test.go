package html_test

import (
	"bytes"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docview"
	"github.com/fwojciec/docview/html"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, buf *bytes.Buffer) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(buf)
	require.NoError(t, err)
	return doc
}

func TestTemplates_RenderIndex(t *testing.T) {
	t.Parallel()

	t.Run("lists every path as a link", func(t *testing.T) {
		t.Parallel()

		tmpl, err := html.NewTemplates([]string{"/README.md"})
		require.NoError(t, err)

		var buf bytes.Buffer
		err = tmpl.RenderIndex(&buf, []string{"/README.md", "/docs/a b.md"})
		require.NoError(t, err)

		doc := parse(t, &buf)
		assert.Equal(t, "/", doc.Find("title").Text())
		links := doc.Find("ul li a")
		require.Equal(t, 2, links.Length())
		assert.Equal(t, "/docs/a b.md", links.Eq(1).Text())
		href, _ := links.Eq(1).Attr("href")
		assert.Equal(t, "/docs/a%20b.md", href)
	})

	t.Run("renders navigation with special paths", func(t *testing.T) {
		t.Parallel()

		tmpl, err := html.NewTemplates([]string{"/README.md", "/docs/index.rst"})
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, tmpl.RenderIndex(&buf, nil))

		nav := parse(t, &buf).Find("nav a")
		require.Equal(t, 3, nav.Length())
		assert.Equal(t, "Files", nav.Eq(0).Text())
		href, _ := nav.Eq(0).Attr("href")
		assert.Equal(t, "/", href)
		assert.Equal(t, "/docs/index.rst", nav.Eq(2).Text())
	})
}

func TestTemplates_RenderPage(t *testing.T) {
	t.Parallel()

	t.Run("embeds body without escaping", func(t *testing.T) {
		t.Parallel()

		tmpl, err := html.NewTemplates(nil)
		require.NoError(t, err)

		var buf bytes.Buffer
		err = tmpl.RenderPage(&buf, &docview.RenderedPage{Title: "/docs/a.md", Body: "<h1 id=\"hi\">Hi</h1>"})
		require.NoError(t, err)

		doc := parse(t, &buf)
		assert.Equal(t, "/docs/a.md", doc.Find("title").Text())
		assert.Equal(t, "Hi", doc.Find("h1#hi").Text())
		assert.Equal(t, 1, doc.Find("footer").Length())
	})

	t.Run("renders action links", func(t *testing.T) {
		t.Parallel()

		tmpl, err := html.NewTemplates(nil)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, tmpl.RenderPage(&buf, &docview.RenderedPage{Title: "/docs/a.md"}))

		var hrefs []string
		parse(t, &buf).Find(".actions a").Each(func(_ int, s *goquery.Selection) {
			href, _ := s.Attr("href")
			hrefs = append(hrefs, href)
		})
		assert.Equal(t, []string{
			"/docs/a.md?raw=true",
			"/docs/a.md",
			"/docs/a.md?format=markdown",
			"/docs/a.md?format=restructuredtext",
			"/docs/a.md?format=plain_text",
		}, hrefs)
	})
}

func TestPathURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/docs/a.md", html.PathURL("/docs/a.md"))
	assert.Equal(t, "/what%3F.md", html.PathURL("/what?.md"))
	assert.Equal(t, "/%23tag.md", html.PathURL("/#tag.md"))
}
