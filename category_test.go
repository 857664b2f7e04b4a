package docview_test

import (
	"testing"

	"github.com/fwojciec/docview"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		want docview.Category
	}{
		{name: "markdown", path: "/docs/a.md", want: docview.CategoryMarkdown},
		{name: "markdown upper case", path: "/NOTES.MARKDOWN", want: docview.CategoryMarkdown},
		{name: "mkd", path: "/x.mkd", want: docview.CategoryMarkdown},
		{name: "restructuredtext", path: "/guide/intro.rst", want: docview.CategoryRestructuredText},
		{name: "restructuredtext mixed case", path: "/intro.RsT", want: docview.CategoryRestructuredText},
		{name: "common text", path: "/main.go", want: docview.CategoryText},
		{name: "config", path: "/etc/app.yaml", want: docview.CategoryText},
		{name: "image", path: "/img/logo.PNG", want: docview.CategoryImage},
		{name: "audio", path: "/a/b.mp3", want: docview.CategoryAudio},
		{name: "video", path: "/clip.webm", want: docview.CategoryVideo},
		{name: "special without extension", path: "/README", want: docview.CategorySpecialIndex},
		{name: "special markdown stays markdown", path: "/README.md", want: docview.CategoryMarkdown},
		{name: "special name with binary extension", path: "/index.pdf", want: docview.CategoryOther},
		{name: "special name with archive extension", path: "/README.zip", want: docview.CategoryOther},
		{name: "special name with unknown extension", path: "/docs/home.exe", want: docview.CategoryOther},
		{name: "special name with text extension", path: "/index.csv", want: docview.CategoryText},
		{name: "unknown binary", path: "/archive.7zq", want: docview.CategoryOther},
		{name: "no extension", path: "/Makefile", want: docview.CategoryOther},
		{name: "dot in directory only", path: "/v1.2/LICENSE", want: docview.CategoryOther},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, docview.Classify(tt.path))
		})
	}
}

func TestExtension(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "md", docview.Extension("/docs/A.MD"))
	assert.Equal(t, "gz", docview.Extension("/dist/app.tar.gz"))
	assert.Equal(t, "", docview.Extension("/v1.2/Makefile"))
	assert.Equal(t, "bashrc", docview.Extension("/.bashrc"))
}

func TestIsSpecialName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{path: "/README.md", want: true},
		{path: "/readme.md", want: true},
		{path: "/docs/deep/ReadMe.rst", want: true},
		{path: "/INDEX.html", want: true},
		{path: "/home.txt", want: true},
		{path: "/SUMMARY.md", want: true},
		{path: "/README", want: true},
		{path: "/readme-notes.md", want: false},
		{path: "/docs/readme/notes.md", want: false},
		{path: "/readme.old.md", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, docview.IsSpecialName(tt.path))
		})
	}
}

func TestIsIgnoredDir(t *testing.T) {
	t.Parallel()

	assert.True(t, docview.IsIgnoredDir(".git"))
	assert.True(t, docview.IsIgnoredDir(".hg"))
	assert.True(t, docview.IsIgnoredDir(".svn"))
	assert.False(t, docview.IsIgnoredDir(".github"))
	assert.False(t, docview.IsIgnoredDir("docs"))
}

func TestCategory_IsText(t *testing.T) {
	t.Parallel()

	assert.True(t, docview.CategoryMarkdown.IsText())
	assert.True(t, docview.CategoryRestructuredText.IsText())
	assert.True(t, docview.CategorySpecialIndex.IsText())
	assert.True(t, docview.CategoryText.IsText())
	assert.False(t, docview.CategoryImage.IsText())
	assert.False(t, docview.CategoryOther.IsText())
}
