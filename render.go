package docview

import "context"

// Format is an explicit request to interpret a file in a specific way,
// regardless of its classification.
type Format string

// Format constants, matching the values of the "format" query parameter.
const (
	FormatNone             Format = ""
	FormatMarkdown         Format = "markdown"
	FormatRestructuredText Format = "restructuredtext"
	FormatPlainText        Format = "plain_text"
)

// ParseFormat converts a query value into a Format.
// Unknown values are treated as FormatNone.
func ParseFormat(s string) Format {
	switch f := Format(s); f {
	case FormatMarkdown, FormatRestructuredText, FormatPlainText:
		return f
	default:
		return FormatNone
	}
}

// RenderRequest describes how a client wants a file served.
// The zero value for Raw and Format means "preview with automatic format".
type RenderRequest struct {
	Path   string
	Raw    bool
	Format Format
}

// NewRenderRequest returns a request for path with default options.
func NewRenderRequest(path string) RenderRequest {
	return RenderRequest{Path: path}
}

// RenderedPage is a file transformed for display, ready to embed in the
// page layout.
type RenderedPage struct {
	Title string
	Body  string // HTML
}

// Outcome is the result of dispatching a RenderRequest. Exactly one of the
// two shapes is used: a raw file (Page is nil) or a rendered page.
type Outcome struct {
	Path string
	Page *RenderedPage
}

// IsRaw reports whether the file must be streamed unchanged.
func (o *Outcome) IsRaw() bool { return o.Page == nil }

// Renderer transforms source text into an HTML fragment.
type Renderer interface {
	// Render converts src to HTML.
	// Implementations must be safe for concurrent use.
	Render(src string) (string, error)
}

// Decoder converts bytes in an unknown character encoding to text.
type Decoder interface {
	// Decode guesses the encoding of b and returns its UTF-8 text.
	// Illegal sequences are substituted rather than reported.
	Decode(b []byte) (string, error)
}

// TextLoader reads indexed files as text.
type TextLoader interface {
	// LoadText returns the decoded content of the indexed path p.
	// Returns ENOTFOUND if the file no longer exists.
	LoadText(ctx context.Context, p string) (string, error)
}

// PageRenderer decides how a requested file is served.
type PageRenderer interface {
	// RenderPage returns the outcome for req.
	// Returns ENOTFOUND if req.Path is not indexed.
	RenderPage(ctx context.Context, req RenderRequest) (*Outcome, error)
}
