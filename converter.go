package mdpdf

import (
	"context"
	"fmt"
	"time"

	"github.com/enkron/mdpdf/internal/compose"
	"github.com/enkron/mdpdf/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.Preprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
)

// Converter runs the full conversion: preprocessing, PDF rendering and the
// optional HTML companion. Create one with NewConverter. A Converter holds
// a goldmark parser and is meant to be used by one goroutine at a time;
// batch callers create one per worker.
type Converter struct {
	layout           Layout
	settings         compose.Settings
	now              func() time.Time
	workPeriodSource string
	highlightStyle   string
	stylesheet       string

	preprocessor  pipeline.MarkdownPreprocessor
	events        *pipeline.EventSource
	htmlConverter pipeline.HTMLConverter
}

// NewConverter creates a Converter with default configuration.
// Returns an error wrapping ErrInvalidLayout or ErrInvalidPageSize when
// WithLayout describes an unusable page.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		now:    time.Now,
		events: pipeline.NewEventSource(),
	}

	for _, opt := range opts {
		opt(c)
	}

	settings, err := c.layout.settings()
	if err != nil {
		return nil, err
	}
	c.settings = settings

	periods := &pipeline.WorkPeriods{Now: c.now}
	if c.workPeriodSource != "" {
		periods.Fallback = c.readSource
	}
	if c.preprocessor == nil {
		c.preprocessor = &pipeline.Preprocessor{WorkPeriods: periods}
	}
	if c.htmlConverter == nil {
		c.htmlConverter = pipeline.NewGoldmarkConverter(c.highlightStyle, c.stylesheet)
	}

	return c, nil
}

// Layout returns the effective layout, with defaults filled in.
func (c *Converter) Layout() Layout {
	return c.layout.withDefaults()
}

// Convert preprocesses input.Markdown and renders it to PDF, plus HTML when
// input.HTML is set. The context is checked between stages.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	markdown, warnings := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pdf, pages := renderPDF(c.events, []byte(markdown), c.settings)
	res := &ConvertResult{
		PDF:      pdf,
		Pages:    pages,
		Warnings: warnings,
	}

	if !input.HTML {
		return res, nil
	}

	htmlContent, err := c.htmlConverter.ToHTML(ctx, markdown)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}
	htmlContent, err = pipeline.RelinkHTML(htmlContent, input.SourceDir)
	if err != nil {
		return nil, fmt.Errorf("%w: relinking: %v", ErrHTMLConversion, err)
	}
	res.HTML = []byte(htmlContent)

	return res, nil
}
