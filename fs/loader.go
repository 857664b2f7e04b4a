package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"unicode/utf8"

	"github.com/fwojciec/docview"
)

// Ensure TextLoader implements docview.TextLoader at compile time.
var _ docview.TextLoader = (*TextLoader)(nil)

// TextLoader reads indexed files from disk and decodes them to text.
type TextLoader struct {
	index   *docview.Index
	decoder docview.Decoder
}

// NewTextLoader creates a TextLoader for files of index. Content that is
// not valid UTF-8 is passed to decoder.
func NewTextLoader(index *docview.Index, decoder docview.Decoder) *TextLoader {
	return &TextLoader{index: index, decoder: decoder}
}

// LoadText returns the content of the indexed path p as UTF-8 text.
func (l *TextLoader) LoadText(ctx context.Context, p string) (string, error) {
	b, err := os.ReadFile(l.index.FilePath(p))
	if errors.Is(err, iofs.ErrNotExist) {
		return "", docview.Errorf(docview.ENOTFOUND, "file %q not found", p)
	} else if err != nil {
		return "", docview.Errorf(docview.EINTERNAL, "failed to read %q: %v", p, err)
	}

	if utf8.Valid(b) {
		return string(b), nil
	}

	text, err := l.decoder.Decode(b)
	if err != nil {
		return "", docview.Errorf(docview.EINTERNAL, "failed to decode %q: %v", p, err)
	}
	return text, nil
}
