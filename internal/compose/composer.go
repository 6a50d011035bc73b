// Package compose lays blocks out on fixed-size pages.
package compose

import (
	"strings"

	"github.com/enkron/mdpdf/internal/document"
	"github.com/enkron/mdpdf/internal/fontmetrics"
	"github.com/enkron/mdpdf/internal/layout"
	"github.com/enkron/mdpdf/internal/pdfwriter"
)

// Vertical gaps in points.
const (
	headingReserve = 4
	heading1Gap    = 8
	heading2Gap    = 4
	headingGap     = 3
	blockGap       = 8
	itemGap        = 2
)

// Settings is the page geometry and typography used by a Composer.
type Settings struct {
	Page         pdfwriter.MediaBox
	MarginX      float64 // left and right
	MarginTop    float64
	MarginBottom float64
	BodySize     float64
	Heading1Size float64
	Heading2Size float64
	Heading3Size float64 // levels 3 and deeper
	LineSpacing  float64 // line height as a multiple of the font size
	BulletIndent float64
}

// DefaultSettings returns A4 with 9pt body text.
func DefaultSettings() Settings {
	return Settings{
		Page:         pdfwriter.A4,
		MarginX:      40,
		MarginTop:    50,
		MarginBottom: 40,
		BodySize:     9,
		Heading1Size: 16,
		Heading2Size: 12,
		Heading3Size: 11,
		LineSpacing:  1.6,
		BulletIndent: 18,
	}
}

// ContentWidth is the page width minus both horizontal margins.
func (s Settings) ContentWidth() float64 {
	return s.Page.Width - 2*s.MarginX
}

// Composer renders blocks onto pages. It tracks a cursor moving down from
// the top margin and starts a new page when the next line would cross the
// bottom margin. A Composer is single-use and not safe for concurrent use.
type Composer struct {
	s       Settings
	pages   []*pdfwriter.Page
	current *pdfwriter.Page
	cursorY float64
}

// New returns a Composer positioned at the top of an empty first page.
func New(s Settings) *Composer {
	return &Composer{
		s:       s,
		current: pdfwriter.NewPage(),
		cursorY: s.Page.Height - s.MarginTop,
	}
}

// Render lays out blocks in order.
func (c *Composer) Render(blocks []document.Block) {
	for _, b := range blocks {
		switch b.Kind {
		case document.BlockHeading:
			c.heading(b.Level, b.Content)
		case document.BlockParagraph:
			c.paragraph(b.Content)
		case document.BlockBulletList:
			c.list(b.Items)
		case document.BlockTable:
			c.table(b.Rows)
		}
	}
}

// Finish returns the composed pages. The page in progress is kept when it
// has content or when no page was finished before, so there is always at
// least one page.
func (c *Composer) Finish() []*pdfwriter.Page {
	if !c.current.IsBlank() || len(c.pages) == 0 {
		c.pages = append(c.pages, c.current)
	}
	pages := c.pages
	c.pages = nil
	c.current = pdfwriter.NewPage()
	c.cursorY = c.s.Page.Height - c.s.MarginTop
	return pages
}

func (c *Composer) heading(level int, content []document.Inline) {
	size, gap := c.s.Heading3Size, float64(headingGap)
	switch level {
	case 1:
		size, gap = c.s.Heading1Size, heading1Gap
	case 2:
		size, gap = c.s.Heading2Size, heading2Gap
	}
	advance := size * c.s.LineSpacing

	c.ensureSpace(advance + headingReserve)
	text := document.PlainText(content)
	x := c.s.MarginX
	if level == 1 {
		w := fontmetrics.TextWidth(text, size, true)
		x = max((c.s.Page.Width-w)/2, c.s.MarginX)
	}
	c.current.WriteText(x, c.cursorY, pdfwriter.Bold, size, text)
	c.cursorY -= advance
	c.cursorY -= gap
}

func (c *Composer) paragraph(content []document.Inline) {
	size := c.s.BodySize
	lines := layout.Wrap(layout.Tokenize(content), c.s.ContentWidth(), size)
	if len(lines) == 0 {
		return
	}
	lh := size * c.s.LineSpacing
	for _, l := range lines {
		c.ensureSpace(lh)
		c.writeLine(l, c.s.MarginX, c.cursorY, size)
		c.cursorY -= lh
	}
	c.cursorY -= blockGap
}

func (c *Composer) list(items [][]document.Inline) {
	size := c.s.BodySize
	width := c.s.ContentWidth() - c.s.BulletIndent
	lh := size * c.s.LineSpacing
	for _, item := range items {
		lines := layout.Wrap(layout.Tokenize(item), width, size)
		if len(lines) == 0 {
			continue
		}
		for i, l := range lines {
			c.ensureSpace(lh)
			if i == 0 {
				c.current.WriteText(c.s.MarginX, c.cursorY, pdfwriter.Regular, size, string(fontmetrics.Bullet))
			}
			c.writeLine(l, c.s.MarginX+c.s.BulletIndent, c.cursorY, size)
			c.cursorY -= lh
		}
		c.cursorY -= itemGap
	}
	c.cursorY -= blockGap
}

// table renders each row as a key/value pair: the first cell flush left,
// the second flush right. Further cells are ignored.
func (c *Composer) table(rows [][][]document.Inline) {
	if len(rows) == 0 {
		return
	}
	size := c.s.BodySize
	lh := size * c.s.LineSpacing
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		left, right := document.PlainText(row[0]), document.PlainText(row[1])
		if strings.TrimSpace(left) == "" && strings.TrimSpace(right) == "" {
			continue
		}

		c.ensureSpace(lh)
		leftFace, rightFace := faceFor(row[0]), faceFor(row[1])
		c.current.WriteText(c.s.MarginX, c.cursorY, leftFace, size, left)

		rw := fontmetrics.TextWidth(right, size, rightFace == pdfwriter.Bold)
		rx := max(c.s.Page.Width-c.s.MarginX-rw, c.s.MarginX)
		c.current.WriteText(rx, c.cursorY, rightFace, size, right)

		c.cursorY -= lh
	}
	c.cursorY -= blockGap
}

func faceFor(cell []document.Inline) pdfwriter.Face {
	if document.ContainsStrong(cell) {
		return pdfwriter.Bold
	}
	return pdfwriter.Regular
}

func (c *Composer) writeLine(l layout.Line, x, y, size float64) {
	for _, seg := range l.Segments {
		face := pdfwriter.Regular
		if seg.Bold {
			face = pdfwriter.Bold
		}
		c.current.WriteText(x, y, face, size, seg.Text)
		x += fontmetrics.TextWidth(seg.Text, size, seg.Bold)
	}
}

func (c *Composer) ensureSpace(required float64) {
	if c.cursorY-required < c.s.MarginBottom {
		c.pages = append(c.pages, c.current)
		c.current = pdfwriter.NewPage()
		c.cursorY = c.s.Page.Height - c.s.MarginTop
	}
}
