package attachpipe

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"strings"

	"github.com/nicholasgasior/attachpipe-go/internal/ooxml"
)

// PPTXLoader loads PPTX presentations into a Document with one page per
// slide, so slide selection works through the same page-selection DSL as
// PDFs.
type PPTXLoader struct{}

// NewPPTXLoader creates a new PPTXLoader.
func NewPPTXLoader() *PPTXLoader {
	return &PPTXLoader{}
}

func (l *PPTXLoader) Name() string { return "pptx" }

func (l *PPTXLoader) Match(locator string) bool {
	return !isURL(locator) && hasExt(locator, ".pptx")
}

func (l *PPTXLoader) Load(locator string) (Payload, error) {
	data, err := os.ReadFile(locator)
	if err != nil {
		return nil, fmt.Errorf("read PPTX: %w", err)
	}
	return parsePPTX(data, locator)
}

func parsePPTX(data []byte, source string) (Payload, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open PPTX package: %w", err)
	}

	slidePaths, err := ooxml.SlidePaths(zr)
	if err != nil {
		return nil, fmt.Errorf("resolve slide order: %w", err)
	}

	doc := &Document{Source: source}
	for i, slidePath := range slidePaths {
		slideData, err := ooxml.ReadPart(zr, slidePath)
		if err != nil {
			doc.Pages = append(doc.Pages, Page{Number: i})
			continue
		}
		doc.Pages = append(doc.Pages, Page{
			Number:  i,
			Content: slideText(slideData),
		})
	}
	return doc, nil
}

// slideText extracts the text runs of a slide, one line per paragraph.
// Text runs live in a:t elements, paragraphs in a:p.
func slideText(slideData []byte) string {
	dec := xml.NewDecoder(bytes.NewReader(slideData))

	var b strings.Builder
	var para strings.Builder
	inRun := false

	flush := func() {
		if text := strings.TrimSpace(para.String()); text != "" {
			b.WriteString(text)
			b.WriteString("\n")
		}
		para.Reset()
	}

	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inRun = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inRun = false
			case "p":
				flush()
			}
		case xml.CharData:
			if inRun {
				para.Write(t)
			}
		}
	}
	flush()
	return strings.TrimSpace(b.String())
}
