package pdfwriter

import (
	"golang.org/x/text/encoding/charmap"

	"github.com/enkron/mdpdf/internal/fontmetrics"
)

// bulletCode is the bullet's octal code in StandardEncoding.
const bulletCode = `\267`

// EscapeText encodes s as the body of a PDF literal string.
//
// Parentheses and backslashes are escaped, carriage returns become spaces,
// and the bullet glyph is written as its StandardEncoding code. Other runes
// in the Latin-1 range are written as single bytes; anything else, including
// invalid UTF-8, becomes '?'.
func EscapeText(s string) []byte {
	out := make([]byte, 0, len(s)+8)
	for _, r := range s {
		switch r {
		case '(', ')', '\\':
			out = append(out, '\\', byte(r))
		case '\r':
			out = append(out, ' ')
		case fontmetrics.Bullet:
			out = append(out, bulletCode...)
		default:
			if b, ok := charmap.ISO8859_1.EncodeRune(r); ok {
				out = append(out, b)
			} else {
				out = append(out, '?')
			}
		}
	}
	return out
}
