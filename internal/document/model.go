package document

import "strings"

// InlineKind discriminates Inline values.
type InlineKind int

// Inline kinds.
const (
	InlineText InlineKind = iota
	InlineStrong
	InlineLink
	InlineLineBreak
)

// Inline is formatted text inside a block. Text is set for InlineText,
// Children for InlineStrong and InlineLink.
type Inline struct {
	Kind     InlineKind
	Text     string
	Children []Inline
}

// NewText returns a text inline.
func NewText(s string) Inline { return Inline{Kind: InlineText, Text: s} }

// NewStrong returns a strong inline wrapping children.
func NewStrong(children ...Inline) Inline {
	return Inline{Kind: InlineStrong, Children: children}
}

// NewLink returns a link inline wrapping children.
func NewLink(children ...Inline) Inline {
	return Inline{Kind: InlineLink, Children: children}
}

// LineBreak is an explicit line break.
var LineBreak = Inline{Kind: InlineLineBreak}

// BlockKind discriminates Block values.
type BlockKind int

// Block kinds.
const (
	BlockHeading BlockKind = iota
	BlockParagraph
	BlockBulletList
	BlockTable
)

func (k BlockKind) String() string {
	switch k {
	case BlockHeading:
		return "Heading"
	case BlockParagraph:
		return "Paragraph"
	case BlockBulletList:
		return "BulletList"
	case BlockTable:
		return "Table"
	default:
		return "Unknown"
	}
}

// Block is a top-level structural unit. Which fields are populated depends
// on Kind:
//   - BlockHeading: Level (1..6) and Content
//   - BlockParagraph: Content
//   - BlockBulletList: Items, one inline sequence per item
//   - BlockTable: Rows, each a sequence of cells
type Block struct {
	Kind    BlockKind
	Level   int
	Content []Inline
	Items   [][]Inline
	Rows    [][][]Inline
}

// Heading returns a heading block.
func Heading(level int, content ...Inline) Block {
	return Block{Kind: BlockHeading, Level: level, Content: content}
}

// Paragraph returns a paragraph block.
func Paragraph(content ...Inline) Block {
	return Block{Kind: BlockParagraph, Content: content}
}

// BulletList returns a bullet list block.
func BulletList(items ...[]Inline) Block {
	return Block{Kind: BlockBulletList, Items: items}
}

// Table returns a table block.
func Table(rows ...[][]Inline) Block {
	return Block{Kind: BlockTable, Rows: rows}
}

// IsBlank reports whether inlines carry no visible text.
func IsBlank(inlines []Inline) bool {
	for _, in := range inlines {
		switch in.Kind {
		case InlineText:
			if strings.TrimSpace(in.Text) != "" {
				return false
			}
		case InlineStrong, InlineLink:
			if !IsBlank(in.Children) {
				return false
			}
		}
	}
	return true
}

// PlainText flattens inlines to a string; line breaks become '\n'.
func PlainText(inlines []Inline) string {
	var sb strings.Builder
	writePlainText(&sb, inlines)
	return sb.String()
}

func writePlainText(sb *strings.Builder, inlines []Inline) {
	for _, in := range inlines {
		switch in.Kind {
		case InlineText:
			sb.WriteString(in.Text)
		case InlineStrong, InlineLink:
			writePlainText(sb, in.Children)
		case InlineLineBreak:
			sb.WriteByte('\n')
		}
	}
}

// ContainsStrong reports whether inlines hold a Strong node at the top level
// or beneath a Link.
func ContainsStrong(inlines []Inline) bool {
	for _, in := range inlines {
		switch in.Kind {
		case InlineStrong:
			return true
		case InlineLink:
			if ContainsStrong(in.Children) {
				return true
			}
		}
	}
	return false
}
