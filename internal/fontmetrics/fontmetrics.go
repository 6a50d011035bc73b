// Package fontmetrics holds advance widths for the base-14 Helvetica family.
//
// Widths are expressed in 1000-unit em space, as published in the Adobe AFM
// files for Helvetica and Helvetica-Bold. Only printable ASCII and the bullet
// glyph are tabulated; everything else falls back to a default width.
package fontmetrics

// Default widths for characters missing from the table.
const (
	DefaultRegularWidth = 500
	DefaultBoldWidth    = 556
)

// Bullet is the list marker glyph.
const Bullet = '•'

type widthPair struct {
	regular float64
	bold    float64
}

// asciiWidths is indexed by rune-0x20 for ' '..'~'.
var asciiWidths = [...]widthPair{
	{278, 278},  // ' '
	{278, 333},  // !
	{355, 474},  // "
	{556, 556},  // #
	{556, 556},  // $
	{889, 889},  // %
	{667, 722},  // &
	{191, 278},  // '
	{333, 333},  // (
	{333, 333},  // )
	{389, 389},  // *
	{584, 584},  // +
	{278, 278},  // ,
	{333, 333},  // -
	{278, 278},  // .
	{278, 278},  // /
	{556, 556},  // 0
	{556, 556},  // 1
	{556, 556},  // 2
	{556, 556},  // 3
	{556, 556},  // 4
	{556, 556},  // 5
	{556, 556},  // 6
	{556, 556},  // 7
	{556, 556},  // 8
	{556, 556},  // 9
	{278, 333},  // :
	{278, 333},  // ;
	{584, 584},  // <
	{584, 584},  // =
	{584, 584},  // >
	{556, 611},  // ?
	{1015, 975}, // @
	{667, 722},  // A
	{667, 722},  // B
	{722, 722},  // C
	{722, 722},  // D
	{667, 667},  // E
	{611, 611},  // F
	{778, 778},  // G
	{722, 722},  // H
	{278, 278},  // I
	{500, 556},  // J
	{667, 722},  // K
	{556, 611},  // L
	{833, 833},  // M
	{722, 722},  // N
	{778, 778},  // O
	{667, 667},  // P
	{778, 778},  // Q
	{722, 722},  // R
	{667, 667},  // S
	{611, 611},  // T
	{722, 722},  // U
	{667, 667},  // V
	{944, 944},  // W
	{667, 667},  // X
	{667, 667},  // Y
	{611, 611},  // Z
	{278, 333},  // [
	{278, 278},  // \
	{278, 333},  // ]
	{469, 581},  // ^
	{556, 556},  // _
	{222, 333},  // `
	{556, 556},  // a
	{556, 611},  // b
	{500, 556},  // c
	{556, 611},  // d
	{556, 556},  // e
	{278, 333},  // f
	{556, 611},  // g
	{556, 611},  // h
	{222, 278},  // i
	{222, 278},  // j
	{500, 556},  // k
	{222, 278},  // l
	{833, 889},  // m
	{556, 611},  // n
	{556, 611},  // o
	{556, 611},  // p
	{556, 611},  // q
	{333, 389},  // r
	{500, 556},  // s
	{278, 333},  // t
	{556, 611},  // u
	{500, 556},  // v
	{722, 778},  // w
	{500, 556},  // x
	{500, 556},  // y
	{500, 500},  // z
	{334, 389},  // {
	{260, 280},  // |
	{334, 389},  // }
	{584, 584},  // ~
}

var bulletWidth = widthPair{350, 350}

// CharWidth returns the advance width of r in 1000-unit em space.
func CharWidth(r rune, bold bool) float64 {
	w, ok := lookup(r)
	if !ok {
		if bold {
			return DefaultBoldWidth
		}
		return DefaultRegularWidth
	}
	if bold {
		return w.bold
	}
	return w.regular
}

func lookup(r rune) (widthPair, bool) {
	if r >= ' ' && r <= '~' {
		return asciiWidths[r-' '], true
	}
	if r == Bullet {
		return bulletWidth, true
	}
	return widthPair{}, false
}

// TextWidth returns the width of s in points when set at size.
func TextWidth(s string, size float64, bold bool) float64 {
	var units float64
	for _, r := range s {
		units += CharWidth(r, bold)
	}
	return units * size / 1000
}
