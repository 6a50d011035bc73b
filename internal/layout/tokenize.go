// Package layout turns inline content into measured, wrapped lines.
package layout

import "github.com/enkron/mdpdf/internal/document"

// TokenKind discriminates Token values.
type TokenKind int

// Token kinds.
const (
	TokenWord TokenKind = iota
	TokenSpace
	TokenHardBreak
)

// Token is one unit of the flattened inline stream. Text and Bold are only
// set for words.
type Token struct {
	Kind TokenKind
	Text string
	Bold bool
}

// Word returns a word token.
func Word(text string, bold bool) Token {
	return Token{Kind: TokenWord, Text: text, Bold: bold}
}

// Space and HardBreak are the payload-free tokens.
var (
	Space     = Token{Kind: TokenSpace}
	HardBreak = Token{Kind: TokenHardBreak}
)

// Tokenize flattens inlines into words, spaces and hard breaks.
// Spaces and tabs separate words; newlines and LineBreak inlines become hard
// breaks. Everything below a Strong node is bold. Links carry no formatting.
func Tokenize(inlines []document.Inline) []Token {
	return collect(nil, inlines, false)
}

func collect(tokens []Token, inlines []document.Inline, bold bool) []Token {
	for _, in := range inlines {
		switch in.Kind {
		case document.InlineText:
			tokens = splitText(tokens, in.Text, bold)
		case document.InlineStrong:
			tokens = collect(tokens, in.Children, true)
		case document.InlineLink:
			tokens = collect(tokens, in.Children, bold)
		case document.InlineLineBreak:
			tokens = append(tokens, HardBreak)
		}
	}
	return tokens
}

func splitText(tokens []Token, s string, bold bool) []Token {
	start := -1
	for i, r := range s {
		switch r {
		case ' ', '\t', '\n':
			if start >= 0 {
				tokens = append(tokens, Word(s[start:i], bold))
				start = -1
			}
			if r == '\n' {
				tokens = append(tokens, HardBreak)
			} else {
				tokens = append(tokens, Space)
			}
		default:
			if start < 0 {
				start = i
			}
		}
	}
	if start >= 0 {
		tokens = append(tokens, Word(s[start:], bold))
	}
	return tokens
}
