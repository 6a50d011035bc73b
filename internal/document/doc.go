// Package document defines the block/inline document tree rendered to PDF
// and the compiler that builds it from a markdown event stream.
//
// The event stream is produced by an external markdown parser (see
// internal/pipeline); this package never looks at markdown source text.
package document
