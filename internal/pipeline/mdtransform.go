package pipeline

import (
	"context"
	"regexp"
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Compress multiple blank lines to max 2
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
// Warnings describe input that was kept as-is because it could not be
// interpreted.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) (string, []string)
}

// Preprocessor normalizes markdown before it is parsed and expands work
// period markers.
type Preprocessor struct {
	WorkPeriods *WorkPeriods // nil disables marker expansion
}

// PreprocessMarkdown applies all transformations in order.
func (p *Preprocessor) PreprocessMarkdown(ctx context.Context, content string) (string, []string) {
	if ctx.Err() != nil {
		return content, nil
	}

	content = normalizeLineEndings(content)
	content = compressBlankLines(content)

	if p.WorkPeriods == nil {
		return content, nil
	}
	return p.WorkPeriods.Expand(content)
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// compressBlankLines limits consecutive blank lines to 2 maximum.
func compressBlankLines(content string) string {
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}
