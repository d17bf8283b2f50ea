package attachpipe

import (
	"fmt"
	"os"

	"github.com/gabriel-vasile/mimetype"
)

// ImageLoader loads a single local image into an ImageSet.
type ImageLoader struct{}

// NewImageLoader creates a new ImageLoader.
func NewImageLoader() *ImageLoader {
	return &ImageLoader{}
}

func (l *ImageLoader) Name() string { return "image" }

func (l *ImageLoader) Match(locator string) bool {
	return !isURL(locator) && hasExt(locator, ".png", ".jpg", ".jpeg", ".gif", ".webp", ".bmp")
}

func (l *ImageLoader) Load(locator string) (Payload, error) {
	data, err := os.ReadFile(locator)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	return parseImage(data, locator)
}

func parseImage(data []byte, source string) (Payload, error) {
	mt := mimetype.Detect(data)
	return &ImageSet{
		Source: source,
		Images: []Image{{MIMEType: mt.String(), Data: data}},
	}, nil
}
