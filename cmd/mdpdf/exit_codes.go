package main

import (
	"errors"
	"os"

	"github.com/enkron/mdpdf"
	"github.com/enkron/mdpdf/internal/assets"
	"github.com/enkron/mdpdf/internal/config"
	"github.com/enkron/mdpdf/internal/hints"
)

// Exit codes for the mdpdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or layout
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrReadStyle) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrNoMarkdownFiles) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, mdpdf.ErrInvalidLayout) ||
		errors.Is(err, mdpdf.ErrInvalidPageSize) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrOutputNotDirectory) ||
		errors.Is(err, ErrTerminalOutput) ||
		errors.Is(err, ErrTooManyArgs) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrInvalidBasePath) {
		return ExitUsage
	}

	return ExitGeneral
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound()
	case errors.Is(err, mdpdf.ErrInvalidLayout), errors.Is(err, mdpdf.ErrInvalidPageSize):
		return hints.ForLayout()
	case errors.Is(err, assets.ErrStyleNotFound), errors.Is(err, assets.ErrInvalidAssetName):
		return hints.ForStyle(assets.Styles())
	case errors.Is(err, ErrTerminalOutput):
		return hints.ForTerminalOutput()
	case errors.Is(err, ErrInvalidExtension):
		return hints.ForExtension()
	case errors.Is(err, ErrOutputNotDirectory):
		return hints.ForBatchOutput()
	case errors.Is(err, ErrWriteOutput):
		return hints.ForOutputDirectory()
	}
	return ""
}
