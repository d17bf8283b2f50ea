package attachpipe

import (
	"fmt"
	"os"
)

// TextLoader is the generic fallback: any existing regular file is
// decoded to UTF-8 and carried as a Text payload. It registers at
// PriorityGeneric so every format-specific loader is tried first.
type TextLoader struct{}

// NewTextLoader creates a new TextLoader.
func NewTextLoader() *TextLoader {
	return &TextLoader{}
}

func (l *TextLoader) Name() string { return "text" }

func (l *TextLoader) Match(locator string) bool {
	return !isURL(locator) && isLocalFile(locator)
}

func (l *TextLoader) Load(locator string) (Payload, error) {
	data, err := os.ReadFile(locator)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return &Text{Source: locator, Content: decodeText(data, "")}, nil
}
