package goldmark

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// KindSuperscript is the NodeKind of superscript spans.
var KindSuperscript = ast.NewNodeKind("Superscript")

// SuperscriptNode is an inline span written as ^text^. Its children are
// the inline nodes between the carets.
type SuperscriptNode struct {
	ast.BaseInline
}

// Kind implements ast.Node.
func (n *SuperscriptNode) Kind() ast.NodeKind {
	return KindSuperscript
}

// Dump implements ast.Node.
func (n *SuperscriptNode) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

type superscriptDelimiterProcessor struct{}

func (p *superscriptDelimiterProcessor) IsDelimiter(b byte) bool {
	return b == '^'
}

func (p *superscriptDelimiterProcessor) CanOpenCloser(opener, closer *parser.Delimiter) bool {
	return opener.Char == closer.Char
}

func (p *superscriptDelimiterProcessor) OnMatch(consumes int) ast.Node {
	return &SuperscriptNode{}
}

var defaultSuperscriptDelimiterProcessor = &superscriptDelimiterProcessor{}

type superscriptParser struct{}

func (p *superscriptParser) Trigger() []byte {
	return []byte{'^'}
}

// Parse pushes a single '^' as a delimiter; matching pairs become
// SuperscriptNodes whose content is parsed as ordinary inline markup.
func (p *superscriptParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	before := block.PrecendingCharacter()
	line, segment := block.PeekLine()
	node := parser.ScanDelimiter(line, before, 1, defaultSuperscriptDelimiterProcessor)
	if node == nil || node.OriginalLength > 1 || before == '^' {
		return nil
	}
	node.Segment = segment.WithStop(segment.Start + node.OriginalLength)
	block.Advance(node.OriginalLength)
	pc.PushDelimiter(node)
	return node
}

type superscriptRenderer struct{}

func (r *superscriptRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindSuperscript, r.render)
}

func (r *superscriptRenderer) render(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString("<sup>")
	} else {
		_, _ = w.WriteString("</sup>")
	}
	return ast.WalkContinue, nil
}

type superscript struct{}

// Superscript is a goldmark extension rendering ^text^ as <sup>text</sup>.
var Superscript goldmark.Extender = &superscript{}

func (e *superscript) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(&superscriptParser{}, 600),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&superscriptRenderer{}, 600),
	))
}
