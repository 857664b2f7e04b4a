// Package chardet implements docview.Decoder using statistical charset
// detection from github.com/gogs/chardet and the decoders of golang.org/x/text.
package chardet

import (
	"strings"

	"github.com/fwojciec/docview"
	"github.com/gogs/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
)

// Ensure Decoder implements docview.Decoder at compile time.
var _ docview.Decoder = (*Decoder)(nil)

// Fallback is used when no confident guess has a known decoder.
var Fallback encoding.Encoding = charmap.Windows1252

// MinConfidence is the lowest detector confidence (0-100) accepted for a
// guess. Short inputs produce weak guesses that are worse than Fallback.
const MinConfidence = 50

// Decoder guesses the character encoding of text and converts it to UTF-8.
type Decoder struct{}

// NewDecoder creates a new Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode detects the charset over the whole of b and decodes it.
// A byte-order mark is not assumed; bytes that are illegal in the detected
// charset are replaced with U+FFFD.
func (d *Decoder) Decode(b []byte) (string, error) {
	enc := d.Detect(b)

	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		// Single-byte charmaps decode every input.
		out, err = Fallback.NewDecoder().Bytes(b)
		if err != nil {
			return "", err
		}
	}
	return strings.ToValidUTF8(string(out), "�"), nil
}

// Detect returns the most likely encoding of b, or Fallback.
// Decode is only called for bytes that are not valid UTF-8, so UTF-8
// guesses are skipped, as are guesses below MinConfidence.
// The detector is created per call because it is not safe for concurrent use.
func (d *Decoder) Detect(b []byte) encoding.Encoding {
	results, err := chardet.NewTextDetector().DetectAll(b)
	if err != nil {
		return Fallback
	}
	for _, result := range results {
		if result.Confidence < MinConfidence {
			break
		}
		if strings.EqualFold(result.Charset, "UTF-8") {
			continue
		}
		return Lookup(result.Charset)
	}
	return Fallback
}

// Lookup resolves a charset name to an encoding, or Fallback when unknown.
func Lookup(name string) encoding.Encoding {
	if enc, err := htmlindex.Get(name); err == nil {
		return enc
	}
	if enc, err := ianaindex.IANA.Encoding(name); err == nil && enc != nil {
		return enc
	}
	return Fallback
}
