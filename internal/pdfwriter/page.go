// Package pdfwriter serializes text-only pages into a PDF 1.4 document.
//
// Pages hold raw content-stream operators that position and show text in
// one of two base-14 faces: Helvetica (F1) and Helvetica-Bold (F2). No fonts
// are embedded, so text is limited to the Latin-1 range.
package pdfwriter

import (
	"bytes"
	"strconv"
)

// Face selects one of the two page fonts.
type Face int

// Faces, mapped to the /F1 and /F2 font resources.
const (
	Regular Face = iota
	Bold
)

func (f Face) resource() string {
	if f == Bold {
		return "F2"
	}
	return "F1"
}

// MediaBox is the page size in points.
type MediaBox struct {
	Width  float64
	Height float64
}

// Standard page sizes.
var (
	A4     = MediaBox{Width: 595, Height: 842} // 210x297mm
	Letter = MediaBox{Width: 612, Height: 792} // 8.5x11in
	Legal  = MediaBox{Width: 612, Height: 1008}
)

// Page accumulates the content stream of a single page.
// The zero value is an empty page ready to use.
type Page struct {
	content bytes.Buffer
}

// NewPage returns an empty page.
func NewPage() *Page {
	return &Page{}
}

// WriteText appends a text-show operator placing text with its baseline
// origin at (x, y). Empty text writes nothing.
func (p *Page) WriteText(x, y float64, face Face, size float64, text string) {
	if text == "" {
		return
	}
	b := &p.content
	b.WriteString("BT /")
	b.WriteString(face.resource())
	b.WriteByte(' ')
	b.WriteString(strconv.FormatFloat(size, 'f', -1, 64))
	b.WriteString(" Tf 1 0 0 1 ")
	b.WriteString(strconv.FormatFloat(x, 'f', 2, 64))
	b.WriteByte(' ')
	b.WriteString(strconv.FormatFloat(y, 'f', 2, 64))
	b.WriteString(" Tm (")
	b.Write(EscapeText(text))
	b.WriteString(") Tj ET\n")
}

// Len returns the content stream length in bytes.
func (p *Page) Len() int { return p.content.Len() }

// Bytes returns the content stream. The slice aliases the page buffer.
func (p *Page) Bytes() []byte { return p.content.Bytes() }

// IsBlank reports whether the page has no content besides whitespace.
func (p *Page) IsBlank() bool {
	return len(bytes.TrimSpace(p.content.Bytes())) == 0
}
