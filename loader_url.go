package attachpipe

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// URLLoader fetches an http(s) locator and routes the response body to the
// right payload parser by content type, falling back to sniffing.
type URLLoader struct {
	engine *Engine
}

// NewURLLoader creates a new URLLoader.
func NewURLLoader(e *Engine) *URLLoader {
	return &URLLoader{engine: e}
}

func (l *URLLoader) Name() string { return "url" }

func (l *URLLoader) Match(locator string) bool {
	return isURL(locator)
}

func (l *URLLoader) Load(locator string) (Payload, error) {
	client := http.DefaultClient
	keepDataURIs := false
	if l.engine != nil {
		client = l.engine.httpClient
		keepDataURIs = l.engine.keepDataURIs
	}

	resp, err := client.Get(locator) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("fetch URL: status %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	mime, charset := contentType(resp.Header.Get("Content-Type"))
	ext := strings.ToLower(filepath.Ext(strings.Split(locator, "?")[0]))
	if mime == "" {
		mime = mimetype.Detect(data).String()
	}

	switch {
	case strings.HasPrefix(mime, "text/html"), strings.HasPrefix(mime, "application/xhtml"):
		return parseHTML(string(data), locator, keepDataURIs)
	case strings.HasPrefix(mime, "application/pdf"), ext == ".pdf":
		return parsePDF(data, locator)
	case strings.HasPrefix(mime, "application/rss"), strings.HasPrefix(mime, "application/atom"),
		ext == ".rss", ext == ".atom":
		return parseFeed(bytes.NewReader(data), locator)
	case strings.HasPrefix(mime, "text/csv"), strings.HasPrefix(mime, "application/csv"), ext == ".csv":
		return parseCSV(data, locator)
	case strings.HasPrefix(mime, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"), ext == ".xlsx":
		return parseXLSX(data, locator)
	case strings.HasPrefix(mime, "application/vnd.openxmlformats-officedocument.presentationml"), ext == ".pptx":
		return parsePPTX(data, locator)
	case strings.HasPrefix(mime, "image/"):
		return parseImage(data, locator)
	case strings.HasPrefix(mime, "audio/"):
		return &AudioClip{Source: locator, MIMEType: mime, Data: data}, nil
	default:
		return &Text{Source: locator, Content: decodeText(data, charset)}, nil
	}
}

// contentType splits a Content-Type header into MIME type and charset.
func contentType(header string) (mime, charset string) {
	if header == "" {
		return "", ""
	}
	parts := strings.Split(header, ";")
	mime = strings.TrimSpace(parts[0])
	for _, p := range parts[1:] {
		p = strings.TrimSpace(p)
		if strings.HasPrefix(p, "charset=") {
			charset = strings.Trim(strings.TrimPrefix(p, "charset="), `"'`)
		}
	}
	return mime, charset
}
