package layout

import (
	"strings"

	"github.com/enkron/mdpdf/internal/fontmetrics"
)

// Segment is a run of text set in a single face.
type Segment struct {
	Text string
	Bold bool
}

// Line is one wrapped output line.
type Line struct {
	Segments []Segment
}

// Width returns the width of the line in points at size.
func (l Line) Width(size float64) float64 {
	var w float64
	for _, s := range l.Segments {
		w += fontmetrics.TextWidth(s.Text, size, s.Bold)
	}
	return w
}

// Text returns the concatenated text of all segments.
func (l Line) Text() string {
	var sb strings.Builder
	for _, s := range l.Segments {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// Wrap breaks tokens into lines no wider than maxWidth at fontSize.
//
// Wrapping is greedy: a word goes on the current line if it fits together
// with any pending space, otherwise the line is flushed first. A word wider
// than maxWidth is never split; it takes a line of its own and overflows.
// Spaces at the start of a line are dropped. Adjacent text of equal weight
// shares a segment; an inter-word space joins the segment before it.
func Wrap(tokens []Token, maxWidth, fontSize float64) []Line {
	w := wrapper{maxWidth: maxWidth, size: fontSize}
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenSpace:
			if w.width > 0 {
				w.pendingSpace = true
			}
		case TokenHardBreak:
			w.flush()
			w.pendingSpace = false
		case TokenWord:
			w.word(tok.Text, tok.Bold)
		}
	}
	w.flush()
	return w.lines
}

type wrapper struct {
	maxWidth     float64
	size         float64
	lines        []Line
	segments     []Segment
	width        float64
	pendingSpace bool
}

func (w *wrapper) word(text string, bold bool) {
	wordWidth := fontmetrics.TextWidth(text, w.size, bold)
	var spaceWidth float64
	if w.pendingSpace {
		spaceWidth = fontmetrics.TextWidth(" ", w.size, false)
	}

	if w.width > 0 && w.width+wordWidth+spaceWidth > w.maxWidth {
		w.flush()
		w.pendingSpace = false
	}

	if w.pendingSpace && len(w.segments) > 0 {
		last := w.segments[len(w.segments)-1].Bold
		w.append(" ", last)
		w.width += fontmetrics.TextWidth(" ", w.size, last)
		w.pendingSpace = false
	}

	w.append(text, bold)
	w.width += wordWidth
}

func (w *wrapper) append(text string, bold bool) {
	if text == "" {
		return
	}
	if n := len(w.segments); n > 0 && w.segments[n-1].Bold == bold {
		w.segments[n-1].Text += text
		return
	}
	w.segments = append(w.segments, Segment{Text: text, Bold: bold})
}

func (w *wrapper) flush() {
	if len(w.segments) == 0 {
		return
	}
	w.lines = append(w.lines, Line{Segments: w.segments})
	w.segments = nil
	w.width = 0
}
