package attachpipe

import (
	"bytes"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

// XLSXLoader loads XLSX workbooks. A single-sheet workbook becomes a
// Table; a multi-sheet workbook becomes a Collection of Tables so the
// sheet transform can select among them.
type XLSXLoader struct{}

// NewXLSXLoader creates a new XLSXLoader.
func NewXLSXLoader() *XLSXLoader {
	return &XLSXLoader{}
}

func (l *XLSXLoader) Name() string { return "xlsx" }

func (l *XLSXLoader) Match(locator string) bool {
	return !isURL(locator) && hasExt(locator, ".xlsx")
}

func (l *XLSXLoader) Load(locator string) (Payload, error) {
	data, err := os.ReadFile(locator)
	if err != nil {
		return nil, fmt.Errorf("read XLSX: %w", err)
	}
	return parseXLSX(data, locator)
}

func parseXLSX(data []byte, source string) (Payload, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open XLSX: %w", err)
	}
	defer f.Close()

	var tables []Payload
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil || len(rows) == 0 {
			continue
		}
		tables = append(tables, &Table{Source: source, Sheet: sheet, Rows: rows})
	}

	return sheetPayload(tables, source)
}

// sheetPayload collapses a one-sheet workbook to its Table.
func sheetPayload(tables []Payload, source string) (Payload, error) {
	switch len(tables) {
	case 0:
		return nil, fmt.Errorf("workbook %q has no non-empty sheets", source)
	case 1:
		return tables[0], nil
	default:
		return &Collection{Source: source, Items: tables}, nil
	}
}
