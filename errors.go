package mdpdf

import (
	"errors"

	"github.com/enkron/mdpdf/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	// ErrInvalidLayout reports margins, sizes or spacing that leave no room
	// for content.
	ErrInvalidLayout = errors.New("invalid layout")

	// ErrInvalidPageSize reports a page size other than a4, letter or legal.
	ErrInvalidPageSize = errors.New("invalid page size")

	// ErrHTMLConversion reports a failure rendering the HTML companion.
	ErrHTMLConversion = pipeline.ErrHTMLConversion
)
