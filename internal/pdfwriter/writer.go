package pdfwriter

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Fixed object ids. Pages follow from firstPageID, then the two fonts, then
// one content stream per page.
const (
	catalogID   = 1
	pagesID     = 2
	firstPageID = 3
)

// Write serializes pages into a complete PDF 1.4 document.
//
// Objects are numbered catalog (1), page tree (2), page dictionaries (3..),
// regular font, bold font, then content streams in page order. The
// cross-reference table records the exact byte offset of every object.
// Writing zero pages produces a document with a single empty page.
func Write(pages []*Page, box MediaBox) []byte {
	if len(pages) == 0 {
		pages = []*Page{NewPage()}
	}

	n := len(pages)
	fontRegularID := firstPageID + n
	fontBoldID := fontRegularID + 1
	firstContentID := fontBoldID + 1
	total := firstContentID + n - 1

	w := &writer{offsets: make([]int, total+1)}
	w.buf.WriteString("%PDF-1.4\n")

	w.putObject(catalogID, fmt.Sprintf("<< /Type /Catalog /Pages %d 0 R >>", pagesID))

	kids := make([]string, n)
	for i := range pages {
		kids[i] = strconv.Itoa(firstPageID+i) + " 0 R"
	}
	w.putObject(pagesID, fmt.Sprintf("<< /Type /Pages /Count %d /Kids [%s] >>", n, strings.Join(kids, " ")))

	for i := range pages {
		w.putObject(firstPageID+i, fmt.Sprintf(
			"<< /Type /Page /Parent %d 0 R /MediaBox [0 0 %.2f %.2f] /Resources << /Font << /F1 %d 0 R /F2 %d 0 R >> >> /Contents %d 0 R >>",
			pagesID, box.Width, box.Height, fontRegularID, fontBoldID, firstContentID+i,
		))
	}

	w.putObject(fontRegularID, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>")
	w.putObject(fontBoldID, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica-Bold >>")

	for i, p := range pages {
		w.putStreamObject(firstContentID+i, p.Bytes())
	}

	w.putXref()
	return w.buf.Bytes()
}

type writer struct {
	buf     bytes.Buffer
	offsets []int
}

func (w *writer) newObj(id int) {
	w.offsets[id] = w.buf.Len()
	w.buf.WriteString(strconv.Itoa(id))
	w.buf.WriteString(" 0 obj\n")
}

func (w *writer) putObject(id int, body string) {
	w.newObj(id)
	w.buf.WriteString(body)
	w.buf.WriteString("\nendobj\n")
}

func (w *writer) putStreamObject(id int, data []byte) {
	w.newObj(id)
	fmt.Fprintf(&w.buf, "<< /Length %d >>\nstream\n", len(data))
	w.buf.Write(data)
	w.buf.WriteString("\nendstream\nendobj\n")
}

func (w *writer) putXref() {
	start := w.buf.Len()
	size := len(w.offsets)
	fmt.Fprintf(&w.buf, "xref\n0 %d\n", size)
	w.buf.WriteString("0000000000 65535 f \n")
	for _, off := range w.offsets[1:] {
		fmt.Fprintf(&w.buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&w.buf, "trailer<< /Size %d /Root %d 0 R >>\nstartxref\n%d\n%%%%EOF\n", size, catalogID, start)
}
