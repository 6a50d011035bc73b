package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/enkron/mdpdf"
	"github.com/enkron/mdpdf/internal/assets"
	"github.com/enkron/mdpdf/internal/config"
	"github.com/enkron/mdpdf/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput         = errors.New("no input specified")
	ErrNoMarkdownFiles = errors.New("no markdown files found")
	ErrReadMarkdown    = errors.New("failed to read markdown")
	ErrWriteOutput     = errors.New("failed to write output")
	ErrTerminalOutput  = errors.New("refusing to write PDF to a terminal")
	ErrTooManyArgs     = errors.New("expected a single input")
	ErrReadStyle       = errors.New("failed to read stylesheet")
)

// stdioPath selects stdin as input or stdout as output.
const stdioPath = "-"

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// CLIConverter is the interface for the conversion service.
type CLIConverter interface {
	Convert(ctx context.Context, input mdpdf.Input) (*mdpdf.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*mdpdf.Converter)(nil)

// converterFactory builds one converter per worker.
type converterFactory func() (CLIConverter, error)

// runConvert loads configuration, merges flags, and converts stdin, a file
// or a directory.
func runConvert(ctx context.Context, flags *cliFlags, positional []string, env *Environment) error {
	if len(positional) > 1 {
		return fmt.Errorf("%w: got %d arguments", ErrTooManyArgs, len(positional))
	}
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	cfg := config.DefaultConfig()
	if flags.config != "" {
		var err error
		if cfg, err = config.LoadConfig(flags.config); err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts := converterOptions(cfg, env)
	if cfg.HTML {
		css, err := resolveStylesheet(cfg)
		if err != nil {
			return err
		}
		opts = append(opts, mdpdf.WithStylesheet(css))
	}
	// Fail on a bad layout before touching any file.
	if _, err := mdpdf.NewConverter(opts...); err != nil {
		return err
	}
	factory := func() (CLIConverter, error) {
		return mdpdf.NewConverter(opts...)
	}

	inputPath, err := resolveInputPath(positional, cfg)
	if err != nil {
		return err
	}

	if inputPath == stdioPath {
		return convertStdin(ctx, factory, flags.output, cfg.HTML, flags.quiet, env)
	}

	outputDir := flags.output
	if outputDir == "" {
		outputDir = cfg.Output.DefaultDir
	}

	files, err := discoverFiles(inputPath, outputDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s", ErrNoMarkdownFiles, inputPath)
	}

	workers := mdpdf.ResolveWorkers(cfg.Workers)
	if flags.verbose {
		fmt.Fprintf(env.Stderr, "Converting %d file(s) with %d worker(s)\n", len(files), min(workers, len(files)))
	}

	results := convertBatch(ctx, factory, workers, files, cfg.HTML)

	failedCount := printResults(results, flags.quiet, flags.verbose, env)
	if failedCount > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		if len(results) == 1 {
			return results[0].Err
		}
		return fmt.Errorf("%d conversion(s) failed", failedCount)
	}
	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.workers != 0 {
		cfg.Workers = flags.workers
	}
	if flags.html {
		cfg.HTML = true
	}
	if flags.layout.pageSize != "" {
		cfg.Layout.PageSize = flags.layout.pageSize
	}
	if flags.layout.margin != 0 {
		cfg.Layout.Margin = flags.layout.margin
	}
	if flags.layout.fontSize != 0 {
		cfg.Layout.FontSize = flags.layout.fontSize
	}
	if flags.workPeriodSource != "" {
		cfg.WorkPeriod.Source = flags.workPeriodSource
	}
	if flags.style != "" {
		cfg.Style = flags.style
	}
}

// resolveStylesheet loads the HTML stylesheet: a CSS file when style is a
// path, otherwise a named style from assets.basePath or the built-in set.
func resolveStylesheet(cfg *config.Config) (string, error) {
	if fileutil.IsFilePath(cfg.Style) {
		data, err := os.ReadFile(cfg.Style) // #nosec G304 -- user-provided path
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrReadStyle, err)
		}
		return string(data), nil
	}

	name := cfg.Style
	if name == "" {
		name = assets.DefaultStyleName
	}
	resolver, err := assets.NewResolver(cfg.Assets.BasePath)
	if err != nil {
		return "", fmt.Errorf("loading styles: %w", err)
	}
	css, err := resolver.LoadStyle(name)
	if err != nil {
		return "", fmt.Errorf("loading style: %w", err)
	}
	return css, nil
}

// converterOptions maps config onto converter options.
func converterOptions(cfg *config.Config, env *Environment) []mdpdf.Option {
	opts := []mdpdf.Option{
		mdpdf.WithLayout(mdpdf.Layout{
			PageSize:     cfg.Layout.PageSize,
			Margin:       cfg.Layout.Margin,
			MarginTop:    cfg.Layout.MarginTop,
			MarginBottom: cfg.Layout.MarginBottom,
			FontSize:     cfg.Layout.FontSize,
			LineSpacing:  cfg.Layout.LineSpacing,
		}),
		mdpdf.WithClock(env.Now),
	}
	if cfg.WorkPeriod.Source != "" {
		opts = append(opts, mdpdf.WithWorkPeriodSource(cfg.WorkPeriod.Source))
	}
	return opts
}

// resolveInputPath picks the positional argument, then input.defaultDir.
func resolveInputPath(positional []string, cfg *config.Config) (string, error) {
	if len(positional) > 0 {
		return positional[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// convertStdin reads markdown from stdin and writes the PDF to output, or
// to stdout when output is empty or "-".
func convertStdin(ctx context.Context, factory converterFactory, output string, html, quiet bool, env *Environment) error {
	toStdout := output == "" || output == stdioPath
	if toStdout && env.StdoutIsTerminal != nil && env.StdoutIsTerminal() {
		return fmt.Errorf("%w: use -o to name an output file", ErrTerminalOutput)
	}

	content, err := io.ReadAll(env.Stdin)
	if err != nil {
		return fmt.Errorf("%w: stdin: %v", ErrReadMarkdown, err)
	}

	conv, err := factory()
	if err != nil {
		return err
	}

	sourceDir := ""
	if !toStdout {
		sourceDir = filepath.Dir(output)
	}
	res, err := conv.Convert(ctx, mdpdf.Input{
		Markdown:  string(content),
		SourceDir: sourceDir,
		HTML:      html && !toStdout,
	})
	if err != nil {
		return err
	}
	printWarnings(env.Stderr, stdioPath, res.Warnings, quiet)

	if toStdout {
		if html && !quiet {
			fmt.Fprintln(env.Stderr, "warning: --html ignored when writing to stdout")
		}
		if _, err := env.Stdout.Write(res.PDF); err != nil {
			return fmt.Errorf("%w: stdout: %v", ErrWriteOutput, err)
		}
		return nil
	}

	return writeOutputs(output, res)
}

// writeOutputs writes the PDF to pdfPath and, when present, the HTML next
// to it.
func writeOutputs(pdfPath string, res *mdpdf.ConvertResult) error {
	if err := os.MkdirAll(filepath.Dir(pdfPath), dirPermissions); err != nil {
		return fmt.Errorf("%w: creating output directory: %v", ErrWriteOutput, err)
	}
	if err := fileutil.WriteFileAtomic(pdfPath, res.PDF, filePermissions); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteOutput, pdfPath, err)
	}
	if res.HTML == nil {
		return nil
	}
	htmlPath, err := fileutil.ReplaceExt(pdfPath, "html")
	if err != nil {
		return err
	}
	if err := fileutil.WriteFileAtomic(htmlPath, res.HTML, filePermissions); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteOutput, htmlPath, err)
	}
	return nil
}

// printWarnings reports markers left unexpanded in a document.
func printWarnings(w io.Writer, path string, warnings []string, quiet bool) {
	if quiet {
		return
	}
	for _, msg := range warnings {
		fmt.Fprintf(w, "warning: %s: %s\n", path, msg)
	}
}

// printResults outputs conversion results and returns the failure count.
func printResults(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	var failed int
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		printWarnings(env.Stderr, r.InputPath, r.Warnings, quiet)
		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%d page(s), %v)\n", r.InputPath, r.OutputPath, r.Pages, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", len(results)-failed, failed)
	}

	return failed
}
