package attachpipe

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFLoader loads local PDF files into a paged Document.
type PDFLoader struct{}

// NewPDFLoader creates a new PDFLoader.
func NewPDFLoader() *PDFLoader {
	return &PDFLoader{}
}

func (l *PDFLoader) Name() string { return "pdf" }

func (l *PDFLoader) Match(locator string) bool {
	return !isURL(locator) && hasExt(locator, ".pdf")
}

func (l *PDFLoader) Load(locator string) (Payload, error) {
	data, err := os.ReadFile(locator)
	if err != nil {
		return nil, fmt.Errorf("read PDF: %w", err)
	}
	return parsePDF(data, locator)
}

// parsePDF builds a Document with one page per PDF page, so page-selection
// transforms operate on real page boundaries.
func parsePDF(data []byte, source string) (Payload, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open PDF: %w", err)
	}

	doc := &Document{Source: source}
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			doc.Pages = append(doc.Pages, Page{Number: i - 1})
			continue
		}
		doc.Pages = append(doc.Pages, Page{
			Number:  i - 1,
			Content: pdfPageText(page),
		})
	}
	return doc, nil
}

// pdfPageText extracts text row by row. Empty runs between non-empty runs
// mark word boundaries the library does not always emit itself.
func pdfPageText(page pdf.Page) string {
	rows, err := page.GetTextByRow()
	if err != nil {
		return ""
	}

	var b strings.Builder
	for _, row := range rows {
		var line strings.Builder
		pendingBoundary := false
		for _, word := range row.Content {
			if word.S == "" {
				pendingBoundary = true
				continue
			}
			if line.Len() > 0 && pendingBoundary && !strings.HasSuffix(line.String(), " ") {
				line.WriteString(" ")
			}
			line.WriteString(word.S)
			pendingBoundary = false
		}
		if text := strings.TrimSpace(line.String()); text != "" {
			b.WriteString(text)
			b.WriteString("\n")
		}
	}
	return strings.TrimSpace(b.String())
}
