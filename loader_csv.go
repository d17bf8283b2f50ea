package attachpipe

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// CSVLoader loads CSV files into a Table.
type CSVLoader struct{}

// NewCSVLoader creates a new CSVLoader.
func NewCSVLoader() *CSVLoader {
	return &CSVLoader{}
}

func (l *CSVLoader) Name() string { return "csv" }

func (l *CSVLoader) Match(locator string) bool {
	return !isURL(locator) && hasExt(locator, ".csv")
}

func (l *CSVLoader) Load(locator string) (Payload, error) {
	data, err := os.ReadFile(locator)
	if err != nil {
		return nil, fmt.Errorf("read CSV: %w", err)
	}
	return parseCSV(data, locator)
}

func parseCSV(data []byte, source string) (Payload, error) {
	text := decodeText(data, "")

	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse CSV: %w", err)
	}

	return &Table{Source: source, Rows: records}, nil
}
