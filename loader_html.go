package attachpipe

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"golang.org/x/net/html"
)

// HTMLLoader loads local HTML files into a markdown Text payload.
type HTMLLoader struct {
	engine *Engine
}

// NewHTMLLoader creates a new HTMLLoader.
func NewHTMLLoader(e *Engine) *HTMLLoader {
	return &HTMLLoader{engine: e}
}

func (l *HTMLLoader) Name() string { return "html" }

func (l *HTMLLoader) Match(locator string) bool {
	return !isURL(locator) && hasExt(locator, ".html", ".htm")
}

func (l *HTMLLoader) Load(locator string) (Payload, error) {
	data, err := os.ReadFile(locator)
	if err != nil {
		return nil, fmt.Errorf("read HTML: %w", err)
	}
	keep := l.engine != nil && l.engine.keepDataURIs
	return parseHTML(string(data), locator, keep)
}

func parseHTML(htmlStr, source string, keepDataURIs bool) (Payload, error) {
	title := extractHTMLTitle(htmlStr)
	htmlStr = removeScriptAndStyle(htmlStr)

	md, err := htmlToMarkdown(htmlStr)
	if err != nil {
		return nil, fmt.Errorf("convert HTML to markdown: %w", err)
	}
	if !keepDataURIs {
		md = truncateDataURIs(md)
	}

	return &Text{Source: source, Title: title, Content: md}, nil
}

func htmlToMarkdown(htmlStr string) (string, error) {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(
				commonmark.WithHeadingStyle("atx"),
			),
			table.NewTablePlugin(),
		),
	)
	return conv.ConvertString(htmlStr)
}

var (
	reScript  = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	reStyle   = regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style>`)
	reDataURI = regexp.MustCompile(`(data:[a-zA-Z0-9/+.-]+;base64,)[A-Za-z0-9+/=]{64,}`)
)

func removeScriptAndStyle(htmlStr string) string {
	htmlStr = reScript.ReplaceAllString(htmlStr, "")
	return reStyle.ReplaceAllString(htmlStr, "")
}

func truncateDataURIs(md string) string {
	return reDataURI.ReplaceAllString(md, "${1}...")
}

// extractHTMLTitle returns the first <title> element's text.
func extractHTMLTitle(htmlStr string) string {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return ""
	}

	var title string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "title" {
			if n.FirstChild != nil {
				title = n.FirstChild.Data
			}
			return
		}
		for c := n.FirstChild; c != nil && title == ""; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return strings.TrimSpace(title)
}
