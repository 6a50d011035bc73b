package mdpdf

import (
	"os"
	"time"
)

// Option configures a Converter.
type Option func(*Converter)

// WithLayout sets the page geometry and type size.
// The layout is validated by NewConverter.
func WithLayout(l Layout) Option {
	return func(c *Converter) {
		c.layout = l
	}
}

// WithClock sets the clock used to resolve end="present" in work periods.
func WithClock(now func() time.Time) Option {
	return func(c *Converter) {
		if now != nil {
			c.now = now
		}
	}
}

// WithWorkPeriodSource names a markdown file whose work periods are summed
// for {{total_work_period}} when the converted document lists none.
// The file is read on demand, once per conversion that needs it.
func WithWorkPeriodSource(path string) Option {
	return func(c *Converter) {
		c.workPeriodSource = path
	}
}

// WithHighlightStyle sets the chroma style of code blocks in HTML output.
func WithHighlightStyle(name string) Option {
	return func(c *Converter) {
		c.highlightStyle = name
	}
}

// WithStylesheet sets page CSS for HTML output, emitted ahead of the
// code highlighting rules.
func WithStylesheet(css string) Option {
	return func(c *Converter) {
		c.stylesheet = css
	}
}

// readSource returns the content of the work period source file.
func (c *Converter) readSource() (string, error) {
	data, err := os.ReadFile(c.workPeriodSource) // #nosec G304 -- user-provided path
	if err != nil {
		return "", err
	}
	return string(data), nil
}
