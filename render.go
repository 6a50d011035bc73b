package mdpdf

import (
	"github.com/enkron/mdpdf/internal/compose"
	"github.com/enkron/mdpdf/internal/document"
	"github.com/enkron/mdpdf/internal/pdfwriter"
	"github.com/enkron/mdpdf/internal/pipeline"
)

// Render converts markdown to a PDF 1.4 document on A4 pages.
//
// Render is total and deterministic: identical input yields identical bytes,
// empty input yields one blank page, and malformed structure drops the
// affected content instead of failing. It does no preprocessing; use a
// Converter for work period markers, layout options or HTML output.
// Render is safe for concurrent use.
func Render(markdown string) []byte {
	pdf, _ := renderPDF(pipeline.NewEventSource(), []byte(markdown), compose.DefaultSettings())
	return pdf
}

// renderPDF runs parse events through the compiler, composer and writer.
func renderPDF(src *pipeline.EventSource, markdown []byte, s compose.Settings) ([]byte, int) {
	compiler := document.NewCompiler()
	src.Emit(markdown, compiler.Handle)

	composer := compose.New(s)
	composer.Render(compiler.Finish())
	pages := composer.Finish()

	return pdfwriter.Write(pages, s.Page), len(pages)
}
