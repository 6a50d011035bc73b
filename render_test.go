package mdpdf_test

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/enkron/mdpdf"
)

var (
	startXref  = regexp.MustCompile(`startxref\n(\d+)\n%%EOF\n$`)
	xrefEntry  = regexp.MustCompile(`(?m)^(\d{10}) 00000 n $`)
	pageCount  = regexp.MustCompile(`/Type /Pages /Count (\d+) /Kids \[([^\]]*)\]`)
	trailerLen = regexp.MustCompile(`trailer<< /Size (\d+) /Root 1 0 R >>`)
)

// pages checks the cross-reference table and page tree of pdf and returns
// its page count.
func pages(t *testing.T, pdf []byte) int {
	t.Helper()

	m := startXref.FindSubmatch(pdf)
	if m == nil {
		t.Fatalf("missing startxref in %q", pdf[max(0, len(pdf)-64):])
	}
	at, _ := strconv.Atoi(string(m[1]))
	if !bytes.HasPrefix(pdf[at:], []byte("xref\n")) {
		t.Fatalf("startxref %d does not point at the xref table", at)
	}

	entries := xrefEntry.FindAllSubmatch(pdf[at:], -1)
	for i, e := range entries {
		off, _ := strconv.Atoi(string(e[1]))
		if want := fmt.Sprintf("%d 0 obj\n", i+1); !bytes.HasPrefix(pdf[off:], []byte(want)) {
			t.Errorf("object %d: offset %d does not point at %q", i+1, off, want)
		}
	}
	s := trailerLen.FindSubmatch(pdf)
	if s == nil {
		t.Fatal("missing trailer")
	}
	if size, _ := strconv.Atoi(string(s[1])); size != len(entries)+1 {
		t.Errorf("/Size = %d, want %d", size, len(entries)+1)
	}

	p := pageCount.FindSubmatch(pdf)
	if p == nil {
		t.Fatal("missing page tree")
	}
	n, _ := strconv.Atoi(string(p[1]))
	if kids := strings.Count(string(p[2]), " 0 R"); kids != n {
		t.Errorf("/Kids has %d entries, /Count = %d", kids, n)
	}
	return n
}

// ---------------------------------------------------------------------------
// TestRender - End-to-end properties of the rendered document
// ---------------------------------------------------------------------------

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		markdown  string
		wantPages int
		contains  []string
		excludes  []string
	}{
		{
			name:      "empty input is one blank page",
			markdown:  "",
			wantPages: 1,
			excludes:  []string{" Tj "},
		},
		{
			name:      "level 1 heading is centered",
			markdown:  "# Short",
			wantPages: 1,
			contains:  []string{"BT /F2 16 Tf 1 0 0 1 276.61 792.00 Tm (Short) Tj ET\n"},
		},
		{
			name:      "table renders the first two cells",
			markdown:  "| K | V | extra |\n|---|---|---|\n| a | **b** | c |\n",
			wantPages: 1,
			contains:  []string{"(K) Tj", "(V) Tj", "(a) Tj", "/F2 9 Tf"},
			excludes:  []string{"(extra)", "(c)"},
		},
		{
			name:      "bullet on the first line only",
			markdown:  "- " + strings.Repeat("wrapped words ", 60) + "\n",
			wantPages: 1,
			contains:  []string{`(\267) Tj`},
		},
		{
			name:      "non latin-1 text degrades to question marks",
			markdown:  "Привет café",
			wantPages: 1,
			contains:  []string{"(?????? caf\xe9) Tj"},
		},
		{
			name:      "parentheses are escaped",
			markdown:  `f(x) \ y`,
			wantPages: 1,
			contains:  []string{`(f\(x\) \\ y) Tj`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pdf := mdpdf.Render(tt.markdown)
			if got := pages(t, pdf); got != tt.wantPages {
				t.Errorf("pages = %d, want %d", got, tt.wantPages)
			}
			for _, want := range tt.contains {
				if !bytes.Contains(pdf, []byte(want)) {
					t.Errorf("output missing %q", want)
				}
			}
			for _, bad := range tt.excludes {
				if bytes.Contains(pdf, []byte(bad)) {
					t.Errorf("output should not contain %q", bad)
				}
			}
		})
	}
}

func TestRender_BulletOnce(t *testing.T) {
	t.Parallel()

	pdf := mdpdf.Render("- " + strings.Repeat("wrapped words ", 60) + "\n")
	if n := bytes.Count(pdf, []byte(`(\267) Tj`)); n != 1 {
		t.Errorf("bullet drawn %d times, want 1", n)
	}
}

func TestRender_Pagination(t *testing.T) {
	t.Parallel()

	var md strings.Builder
	for i := range 200 {
		fmt.Fprintf(&md, "Paragraph number %d.\n\n", i)
	}

	pdf := mdpdf.Render(md.String())
	if n := pages(t, pdf); n < 2 {
		t.Errorf("pages = %d, want several", n)
	}
	if !bytes.Contains(pdf, []byte("(Paragraph number 199.) Tj")) {
		t.Error("last paragraph missing")
	}
}

func TestRender_Deterministic(t *testing.T) {
	t.Parallel()

	md := "# Title\n\nSome **bold** text.\n\n- one\n- two\n\n| a | b |\n|---|---|\n| c | d |\n"
	if !bytes.Equal(mdpdf.Render(md), mdpdf.Render(md)) {
		t.Error("Render() is not deterministic")
	}
}
