package markdown

import (
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	gmparser "github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"primer/pkg/domain"
)

// Parser converts raw chapter bytes into the structural model the verifier
// and the surfaces work with. It is stateless, so a single instance can be
// shared across goroutines without locking.
type Parser struct {
	md goldmark.Markdown
}

// NewParser builds a parser with GFM extensions and auto heading IDs, so the
// anchors recorded here match the ones the HTML renderer emits.
func NewParser() *Parser {
	return &Parser{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM, extension.Linkify),
			goldmark.WithParserOptions(gmparser.WithAutoHeadingID()),
		),
	}
}

// Parse builds a Chapter from raw file content. The id is the loader-assigned
// chapter ID (file name without extension); frontmatter may repeat it.
func (p *Parser) Parse(id string, source []byte) (*domain.Chapter, error) {
	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		return nil, fmt.Errorf("chapter %s: %w", id, err)
	}

	ch := &domain.Chapter{
		ID:   id,
		Meta: meta,
		Body: body,
	}

	root := p.md.Parser().Parse(text.NewReader(body))

	err = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			ch.Sections = append(ch.Sections, domain.Section{
				Level:  node.Level,
				Title:  string(nodeText(node, body)),
				Anchor: headingAnchor(node),
				Offset: blockOffset(node),
			})

		case *ast.FencedCodeBlock:
			lang := ""
			if l := node.Language(body); l != nil {
				lang = string(l)
			}
			ch.CodeBlocks = append(ch.CodeBlocks, domain.CodeBlock{
				Lang:   lang,
				Body:   string(blockLines(node, body)),
				Offset: blockOffset(node),
			})

		case *ast.Link:
			ch.Links = append(ch.Links, domain.Link{
				Destination: string(node.Destination),
				Offset:      inlineOffset(node),
			})

		case *ast.AutoLink:
			ch.Links = append(ch.Links, domain.Link{
				Destination: string(node.URL(body)),
				Offset:      inlineOffset(node),
			})
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("chapter %s: walk: %w", id, err)
	}

	return ch, nil
}

// headingAnchor reads the auto-generated "id" attribute from a heading node.
func headingAnchor(n *ast.Heading) string {
	if v, ok := n.AttributeString("id"); ok {
		if b, ok := v.([]byte); ok {
			return string(b)
		}
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// nodeText collects the literal text of a node's descendants.
func nodeText(n ast.Node, source []byte) []byte {
	var out []byte
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			out = append(out, t.Segment.Value(source)...)
		case *ast.String:
			out = append(out, t.Value...)
		}
		return ast.WalkContinue, nil
	})
	return out
}

// blockLines joins the line segments of a block node (fenced code content).
func blockLines(n ast.Node, source []byte) []byte {
	var out []byte
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		out = append(out, seg.Value(source)...)
	}
	return out
}

// blockOffset is the byte offset of the first content line of a block node.
// Used only for document-order comparisons, so 0 is an acceptable fallback
// for blocks with no line segments.
func blockOffset(n ast.Node) int {
	if lines := n.Lines(); lines.Len() > 0 {
		return lines.At(0).Start
	}
	return 0
}

// inlineOffset approximates an inline node's position via its first text child.
func inlineOffset(n ast.Node) int {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			return t.Segment.Start
		}
	}
	return 0
}
