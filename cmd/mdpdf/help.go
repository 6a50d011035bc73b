package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"github.com/enkron/mdpdf/internal/assets"
)

const description = "Convert Markdown files to PDF. Headings, paragraphs, bullet lists " +
	"and two-column tables are laid out on fixed-size pages with the standard " +
	"Helvetica fonts; emphasis renders bold and characters outside Latin-1 " +
	"become '?'. A directory argument converts every .md and .markdown file " +
	"below it in parallel. With - the document is read from stdin and the PDF " +
	"is written to stdout."

const workPeriodHelp = "{{work_period: start=\"YYYY-MM\", end=\"YYYY-MM\"|\"present\"}} " +
	"expands to the elapsed years and months. {{total_work_period}} expands to " +
	"the sum of all periods in whole years; when the document has none, the " +
	"periods of --work-period-source are summed instead."

// printUsage prints the command help wrapped to width columns.
func printUsage(w io.Writer, width int) {
	fmt.Fprintln(w, "Usage: mdpdf [flags] <file.md|dir|->")
	fmt.Fprintln(w)
	fmt.Fprintln(w, wordwrap.String(description, width))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, newFlagSet(&cliFlags{}).FlagUsagesWrapped(width))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Markers:")
	fmt.Fprintln(w, indent.String(wordwrap.String(workPeriodHelp, width-2), 2))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styles:")
	styleHelp := "HTML output uses the " + assets.DefaultStyleName + " style unless --style names " +
		"another: built-in " + strings.Join(assets.Styles(), ", ") + ", a style from " +
		"assets.basePath/styles, or a CSS file path."
	fmt.Fprintln(w, indent.String(wordwrap.String(styleHelp, width-2), 2))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintln(w, strings.Join([]string{
		"  0  success",
		"  1  conversion failed",
		"  2  invalid flags, config or layout",
		"  3  input or output file error",
	}, "\n"))
}
