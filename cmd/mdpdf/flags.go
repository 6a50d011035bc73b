package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// cliFlags holds every flag of the mdpdf command.
type cliFlags struct {
	config  string
	quiet   bool
	verbose bool
	help    bool
	version bool

	output  string
	workers int
	html    bool
	style   string

	layout layoutFlags

	workPeriodSource string
}

// layoutFlags holds page layout overrides. Zero means "not set".
type layoutFlags struct {
	pageSize string
	margin   float64
	fontSize float64
}

// newFlagSet declares the flags on a fresh FlagSet bound to f.
func newFlagSet(f *cliFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("mdpdf", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory (- for stdout)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel conversions (0 = auto)")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show timing and page counts")
	fs.BoolVar(&f.html, "html", false, "also write an HTML document")
	fs.StringVar(&f.style, "style", "", "HTML stylesheet: style name or CSS file path")

	fs.StringVar(&f.layout.pageSize, "page-size", "", "page size: a4, letter, legal")
	fs.Float64Var(&f.layout.margin, "margin", 0, "horizontal margin in points")
	fs.Float64Var(&f.layout.fontSize, "font-size", 0, "body font size in points")

	fs.StringVar(&f.workPeriodSource, "work-period-source", "", "markdown file summed for {{total_work_period}}")

	fs.BoolVar(&f.version, "version", false, "print version and exit")
	fs.BoolVarP(&f.help, "help", "h", false, "show this help")
	return fs
}

// parseFlags parses args (without the program name).
func parseFlags(args []string) (*cliFlags, []string, error) {
	f := &cliFlags{}
	fs := newFlagSet(f)
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
