package attachpipe

import (
	"fmt"

	"github.com/extrame/xls"
)

// XLSLoader loads legacy XLS workbooks, same payload shape as XLSXLoader.
type XLSLoader struct{}

// NewXLSLoader creates a new XLSLoader.
func NewXLSLoader() *XLSLoader {
	return &XLSLoader{}
}

func (l *XLSLoader) Name() string { return "xls" }

func (l *XLSLoader) Match(locator string) bool {
	return !isURL(locator) && hasExt(locator, ".xls")
}

func (l *XLSLoader) Load(locator string) (Payload, error) {
	wb, err := xls.Open(locator, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("open XLS: %w", err)
	}

	var tables []Payload
	for i := 0; i < wb.NumSheets(); i++ {
		sheet := wb.GetSheet(i)
		if sheet == nil {
			continue
		}
		name := sheet.Name
		if name == "" {
			name = fmt.Sprintf("Sheet%d", i+1)
		}

		var rows [][]string
		for rowIdx := 0; rowIdx <= int(sheet.MaxRow); rowIdx++ {
			row := sheet.Row(rowIdx)
			if row == nil {
				continue
			}
			var cells []string
			for colIdx := 0; colIdx < row.LastCol(); colIdx++ {
				cells = append(cells, row.Col(colIdx))
			}
			rows = append(rows, cells)
		}
		if len(rows) == 0 {
			continue
		}
		tables = append(tables, &Table{Source: locator, Sheet: name, Rows: rows})
	}

	return sheetPayload(tables, locator)
}
