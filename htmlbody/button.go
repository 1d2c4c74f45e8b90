package htmlbody

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// buttonOpen is the syntax prefix that triggers button parsing:
// [!button|Label](URL) renders as an anchor with a "btn" class, giving email
// layouts a hook to style call-to-action links.
const buttonOpen = "[!button|"

// buttonLink is the inline AST node for the button syntax.
type buttonLink struct {
	ast.BaseInline
	url   []byte
	label []byte
}

var kindButtonLink = ast.NewNodeKind("ButtonLink")

func (n *buttonLink) Kind() ast.NodeKind {
	return kindButtonLink
}

func (n *buttonLink) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

type buttonLinkParser struct{}

func (p *buttonLinkParser) Trigger() []byte {
	return []byte{'['}
}

func (p *buttonLinkParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	line, _ := block.PeekLine()
	if !bytes.HasPrefix(line, []byte(buttonOpen)) {
		return nil
	}

	labelEnd := bytes.IndexByte(line[len(buttonOpen):], ']')
	if labelEnd == -1 {
		return nil
	}
	labelEnd += len(buttonOpen)

	if labelEnd+1 >= len(line) || line[labelEnd+1] != '(' {
		return nil
	}
	urlEnd := bytes.IndexByte(line[labelEnd+2:], ')')
	if urlEnd == -1 {
		return nil
	}
	urlEnd += labelEnd + 2

	node := &buttonLink{
		label: line[len(buttonOpen):labelEnd],
		url:   line[labelEnd+2 : urlEnd],
	}
	block.Advance(urlEnd + 1)
	return node
}

type buttonLinkRenderer struct{}

func (r *buttonLinkRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(kindButtonLink, r.render)
}

func (r *buttonLinkRenderer) render(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	n := node.(*buttonLink)
	_, _ = w.WriteString(`<a href="`)
	_, _ = w.Write(util.EscapeHTML(n.url))
	_, _ = w.WriteString(`" class="btn">`)
	_, _ = w.Write(util.EscapeHTML(n.label))
	_, _ = w.WriteString(`</a>`)
	return ast.WalkContinue, nil
}

// buttonExtension wires the button parser and renderer into goldmark.
type buttonExtension struct{}

func (buttonExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(&buttonLinkParser{}, 50),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&buttonLinkRenderer{}, 50),
	))
}
