package mock

import (
	"context"

	"github.com/fwojciec/docview"
)

var _ docview.TextLoader = (*TextLoader)(nil)

// TextLoader is a mock implementation of docview.TextLoader.
type TextLoader struct {
	LoadTextFn func(ctx context.Context, p string) (string, error)
}

func (l *TextLoader) LoadText(ctx context.Context, p string) (string, error) {
	return l.LoadTextFn(ctx, p)
}

var _ docview.Decoder = (*Decoder)(nil)

// Decoder is a mock implementation of docview.Decoder.
type Decoder struct {
	DecodeFn func(b []byte) (string, error)
}

func (d *Decoder) Decode(b []byte) (string, error) {
	return d.DecodeFn(b)
}
