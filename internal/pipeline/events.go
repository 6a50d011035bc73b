package pipeline

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extensionAST "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/enkron/mdpdf/internal/document"
)

// EventSource parses markdown with goldmark and replays the syntax tree as
// a flat stream of document events.
//
// Only the table and strikethrough extensions are enabled. Tight list items
// carry no paragraph events; loose ones do.
type EventSource struct {
	md goldmark.Markdown
}

// NewEventSource creates an EventSource. An EventSource reuses one goldmark
// parser; use it from one goroutine at a time.
func NewEventSource() *EventSource {
	return &EventSource{
		md: goldmark.New(
			goldmark.WithExtensions(extension.Table, extension.Strikethrough),
		),
	}
}

// Emit parses source and calls emit for each event in document order.
func (s *EventSource) Emit(source []byte, emit func(document.Event)) {
	doc := s.md.Parser().Parse(text.NewReader(source))
	// The walker callback never fails.
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		return visit(n, source, entering, emit), nil
	})
}

// Events parses source and returns the full event stream.
func (s *EventSource) Events(source []byte) []document.Event {
	var events []document.Event
	s.Emit(source, func(ev document.Event) { events = append(events, ev) })
	return events
}

func visit(n ast.Node, source []byte, entering bool, emit func(document.Event)) ast.WalkStatus {
	container := func(tag document.Tag) ast.WalkStatus {
		if entering {
			emit(document.Start(tag))
		} else {
			emit(document.End(tag))
		}
		return ast.WalkContinue
	}

	switch nd := n.(type) {
	case *ast.Document, *ast.TextBlock:
		return ast.WalkContinue

	case *ast.Heading:
		if entering {
			emit(document.StartHeading(nd.Level))
		} else {
			emit(document.End(document.TagHeading))
		}
		return ast.WalkContinue

	case *ast.Paragraph:
		return container(document.TagParagraph)
	case *ast.List:
		return container(document.TagList)
	case *ast.ListItem:
		return container(document.TagItem)
	case *ast.Blockquote:
		return container(document.TagBlockQuote)
	case *ast.Link:
		return container(document.TagLink)
	case *ast.Image:
		return container(document.TagImage)
	case *ast.Emphasis:
		if nd.Level >= 2 {
			return container(document.TagStrong)
		}
		return container(document.TagEmphasis)

	case *extensionAST.Table:
		return container(document.TagTable)
	case *extensionAST.TableHeader:
		return container(document.TagTableHead)
	case *extensionAST.TableRow:
		return container(document.TagTableRow)
	case *extensionAST.TableCell:
		return container(document.TagTableCell)
	case *extensionAST.Strikethrough:
		return container(document.TagStrikethrough)

	case *ast.Text:
		if !entering {
			return ast.WalkContinue
		}
		value := nd.Segment.Value(source)
		if !nd.IsRaw() {
			value = unescape(value)
		}
		if len(value) > 0 {
			emit(document.Text(string(value)))
		}
		switch {
		case nd.HardLineBreak():
			emit(document.HardBreak)
		case nd.SoftLineBreak():
			emit(document.SoftBreak)
		}
		return ast.WalkContinue

	case *ast.String:
		if entering && len(nd.Value) > 0 {
			emit(document.Text(string(nd.Value)))
		}
		return ast.WalkContinue

	case *ast.CodeSpan:
		if entering {
			emit(document.Code(codeSpanText(nd, source)))
		}
		return ast.WalkSkipChildren

	case *ast.AutoLink:
		if entering {
			emit(document.Start(document.TagLink))
			emit(document.Text(string(nd.Label(source))))
			emit(document.End(document.TagLink))
		}
		return ast.WalkSkipChildren

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		if entering {
			emit(document.Start(document.TagCodeBlock))
			if body := linesText(n.Lines(), source); body != "" {
				emit(document.Text(body))
			}
			emit(document.End(document.TagCodeBlock))
		}
		return ast.WalkSkipChildren

	case *ast.HTMLBlock:
		if entering {
			emit(document.HTML(linesText(nd.Lines(), source)))
		}
		return ast.WalkSkipChildren

	case *ast.RawHTML:
		if entering {
			emit(document.HTML(linesText(nd.Segments, source)))
		}
		return ast.WalkSkipChildren

	case *ast.ThematicBreak:
		if entering {
			emit(document.Rule)
		}
		return ast.WalkSkipChildren

	default:
		return container(document.TagOther)
	}
}

func unescape(b []byte) []byte {
	return util.UnescapePunctuations(util.ResolveNumericReferences(util.ResolveEntityNames(b)))
}

// codeSpanText joins the raw content of a code span; line endings inside
// the span read as spaces.
func codeSpanText(n *ast.CodeSpan, source []byte) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(source))
		case *ast.String:
			sb.Write(t.Value)
		}
	}
	return strings.ReplaceAll(sb.String(), "\n", " ")
}

func linesText(lines *text.Segments, source []byte) string {
	var sb strings.Builder
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(source))
	}
	return sb.String()
}
