package attachpipe

import (
	"fmt"
	"os"

	"github.com/gabriel-vasile/mimetype"
)

// AudioLoader loads a local audio file into an AudioClip.
type AudioLoader struct{}

// NewAudioLoader creates a new AudioLoader.
func NewAudioLoader() *AudioLoader {
	return &AudioLoader{}
}

func (l *AudioLoader) Name() string { return "audio" }

func (l *AudioLoader) Match(locator string) bool {
	return !isURL(locator) && hasExt(locator, ".mp3", ".wav", ".ogg", ".flac", ".m4a")
}

func (l *AudioLoader) Load(locator string) (Payload, error) {
	data, err := os.ReadFile(locator)
	if err != nil {
		return nil, fmt.Errorf("read audio: %w", err)
	}
	return &AudioClip{
		Source:   locator,
		MIMEType: mimetype.Detect(data).String(),
		Data:     data,
	}, nil
}
