package chardet_test

import (
	"testing"
	"unicode/utf8"

	"github.com/fwojciec/docview"
	"github.com/fwojciec/docview/chardet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
)

// Ensure Decoder implements docview.Decoder at compile time.
var _ docview.Decoder = (*chardet.Decoder)(nil)

func TestDecoder_Decode(t *testing.T) {
	t.Parallel()

	t.Run("decodes latin-1 text", func(t *testing.T) {
		t.Parallel()

		text := "Le caf\xe9 du coin sert une cr\xe8me br\xfbl\xe9e d\xe9licieuse. " +
			"Nous avons pass\xe9 une tr\xe8s bonne soir\xe9e \xe0 la fen\xeatre, pr\xe8s de la for\xeat."

		out, err := chardet.NewDecoder().Decode([]byte(text))

		require.NoError(t, err)
		assert.True(t, utf8.ValidString(out))
		assert.Contains(t, out, "café")
		assert.Contains(t, out, "délicieuse")
	})

	t.Run("decodes short latin-1 text", func(t *testing.T) {
		t.Parallel()

		for in, want := range map[string]string{
			"caf\xe9":     "café",
			"Stra\xdfe\n": "Straße\n",
		} {
			out, err := chardet.NewDecoder().Decode([]byte(in))

			require.NoError(t, err)
			assert.Equal(t, want, out)
		}
	})

	t.Run("decodes shift_jis text", func(t *testing.T) {
		t.Parallel()

		want := "日本語のテキストです。これは文字コードの判定テストです。" +
			"ファイルの内容を正しく表示するために、エンコーディングを推測します。"
		encoded, err := japanese.ShiftJIS.NewEncoder().String(want)
		require.NoError(t, err)

		out, err := chardet.NewDecoder().Decode([]byte(encoded))

		require.NoError(t, err)
		assert.Equal(t, want, out)
	})

	t.Run("always returns valid utf-8", func(t *testing.T) {
		t.Parallel()

		out, err := chardet.NewDecoder().Decode([]byte{0xff, 0xfe, 0x00, 0xc3, 0x28, 0x80})

		require.NoError(t, err)
		assert.True(t, utf8.ValidString(out))
	})
}

func TestDecoder_Detect(t *testing.T) {
	t.Parallel()

	t.Run("never guesses utf-8 for invalid utf-8", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, chardet.Fallback, chardet.NewDecoder().Detect([]byte("caf\xe9")))
	})

	t.Run("falls back on weak guesses", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, chardet.Fallback, chardet.NewDecoder().Detect([]byte("Stra\xdfe\n")))
	})
}

func TestLookup(t *testing.T) {
	t.Parallel()

	t.Run("resolves html charset labels", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, charmap.Windows1252, chardet.Lookup("ISO-8859-1"))
		assert.Equal(t, japanese.ShiftJIS, chardet.Lookup("Shift_JIS"))
	})

	t.Run("falls back for unknown names", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, chardet.Fallback, chardet.Lookup("IBM424_rtl"))
	})
}
