package mdpdf

import (
	"fmt"
	"math"
	"strings"

	"github.com/enkron/mdpdf/internal/compose"
	"github.com/enkron/mdpdf/internal/pdfwriter"
)

// Page size constants.
const (
	PageSizeA4     = "a4"
	PageSizeLetter = "letter"
	PageSizeLegal  = "legal"
)

// Default layout values, in points unless noted.
const (
	DefaultMargin       = 40.0
	DefaultMarginTop    = 50.0
	DefaultMarginBottom = 40.0
	DefaultFontSize     = 9.0
	DefaultLineSpacing  = 1.6 // multiple of the font size
)

var pageSizes = map[string]pdfwriter.MediaBox{
	PageSizeA4:     pdfwriter.A4,
	PageSizeLetter: pdfwriter.Letter,
	PageSizeLegal:  pdfwriter.Legal,
}

// Layout configures page geometry and type size. Zero fields take the
// defaults, so the zero Layout renders exactly like Render.
type Layout struct {
	PageSize     string  // "a4", "letter", "legal" (case-insensitive)
	Margin       float64 // left and right
	MarginTop    float64
	MarginBottom float64
	FontSize     float64 // body text; headings scale with it
	LineSpacing  float64
}

// DefaultLayout returns the layout used by Render.
func DefaultLayout() Layout {
	return Layout{
		PageSize:     PageSizeA4,
		Margin:       DefaultMargin,
		MarginTop:    DefaultMarginTop,
		MarginBottom: DefaultMarginBottom,
		FontSize:     DefaultFontSize,
		LineSpacing:  DefaultLineSpacing,
	}
}

// Validate reports whether l describes a usable page.
// Does not mutate: zero fields are checked as their defaults.
func (l Layout) Validate() error {
	_, err := l.settings()
	return err
}

// withDefaults fills zero fields from DefaultLayout.
func (l Layout) withDefaults() Layout {
	d := DefaultLayout()
	if l.PageSize == "" {
		l.PageSize = d.PageSize
	}
	if l.Margin == 0 {
		l.Margin = d.Margin
	}
	if l.MarginTop == 0 {
		l.MarginTop = d.MarginTop
	}
	if l.MarginBottom == 0 {
		l.MarginBottom = d.MarginBottom
	}
	if l.FontSize == 0 {
		l.FontSize = d.FontSize
	}
	if l.LineSpacing == 0 {
		l.LineSpacing = d.LineSpacing
	}
	return l
}

// settings converts l into composer settings.
func (l Layout) settings() (compose.Settings, error) {
	l = l.withDefaults()

	box, ok := pageSizes[strings.ToLower(l.PageSize)]
	if !ok {
		return compose.Settings{}, fmt.Errorf("%w: %q", ErrInvalidPageSize, l.PageSize)
	}

	for _, f := range []struct {
		name  string
		value float64
	}{
		{"margin", l.Margin},
		{"top margin", l.MarginTop},
		{"bottom margin", l.MarginBottom},
		{"font size", l.FontSize},
		{"line spacing", l.LineSpacing},
	} {
		if f.value < 0 || math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return compose.Settings{}, fmt.Errorf("%w: %s must be positive, got %g", ErrInvalidLayout, f.name, f.value)
		}
	}

	scale := l.FontSize / DefaultFontSize
	s := compose.DefaultSettings()
	s.Page = box
	s.MarginX = l.Margin
	s.MarginTop = l.MarginTop
	s.MarginBottom = l.MarginBottom
	s.BodySize = l.FontSize
	s.Heading1Size *= scale
	s.Heading2Size *= scale
	s.Heading3Size *= scale
	s.BulletIndent *= scale
	s.LineSpacing = l.LineSpacing

	if s.ContentWidth() <= s.BulletIndent {
		return compose.Settings{}, fmt.Errorf("%w: margins leave %.2fpt of width", ErrInvalidLayout, s.ContentWidth())
	}
	if room := box.Height - l.MarginTop - l.MarginBottom; room < s.Heading1Size*s.LineSpacing {
		return compose.Settings{}, fmt.Errorf("%w: margins leave %.2fpt of height", ErrInvalidLayout, room)
	}
	return s, nil
}

// Input contains the markdown and per-conversion options.
type Input struct {
	Markdown  string
	SourceDir string // resolves relative links and images in the HTML companion
	HTML      bool   // also render an HTML document
}

// ConvertResult contains the outputs of a conversion.
type ConvertResult struct {
	PDF      []byte
	HTML     []byte // nil unless Input.HTML was set
	Pages    int
	Warnings []string // markers that could not be expanded, left as-is
}
