// Package pipeline implements the markdown side of the conversion:
//   - Markdown preprocessing (line normalization, work period markers)
//   - Parsing via goldmark into the event stream consumed by the document
//     compiler
//   - The optional HTML companion document, with highlighted code and
//     links adjusted for its output location
//
// Layout and PDF serialization live in the compose and pdfwriter packages;
// this package never deals with pages.
package pipeline
