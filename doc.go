// Package mdpdf renders Markdown documents to PDF 1.4 without external
// tools or PDF libraries.
//
// # Quick Start
//
// Render is a pure function from markdown to PDF bytes:
//
//	pdf := mdpdf.Render("# Hello\n\nWorld")
//	os.WriteFile("output.pdf", pdf, 0644)
//
// # Conversion Pipeline
//
// The conversion follows these stages:
//
//  1. Markdown preprocessing (line normalization, work period markers);
//     Converter only
//  2. Parsing via Goldmark (tables, strikethrough) into a stream of
//     start/end/text events
//  3. Folding events into blocks: headings, paragraphs, bullet lists and
//     two-column key/value tables
//  4. Greedy line wrapping with Helvetica metrics and pagination
//  5. Serialization with the base-14 Helvetica fonts and a byte-exact
//     cross-reference table
//
// Emphasis renders bold, code renders as plain text, and characters outside
// Latin-1 are replaced with '?'.
//
// # Configuration
//
// Use functional options to customize a converter:
//
//	conv, err := mdpdf.NewConverter(
//	    mdpdf.WithLayout(mdpdf.Layout{PageSize: "letter", Margin: 54}),
//	    mdpdf.WithWorkPeriodSource("cv.md"),
//	)
//
// Per-conversion options are passed via Input:
//
//	result, err := conv.Convert(ctx, mdpdf.Input{
//	    Markdown:  content,
//	    SourceDir: "/path/to/markdown", // for links in the HTML output
//	    HTML:      true,
//	})
//
// # Work Periods
//
// Markdown may contain {{work_period: start="2021-03", end="present"}},
// replaced by the elapsed "X years, Y months", and {{total_work_period}},
// replaced by the sum of all periods rounded to whole years.
package mdpdf
