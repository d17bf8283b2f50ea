package attachpipe

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mmcdole/gofeed"
)

// FeedLoader loads RSS and Atom feeds into a Collection with one Text
// item per feed entry, so item selection and join compose naturally.
type FeedLoader struct{}

// NewFeedLoader creates a new FeedLoader.
func NewFeedLoader() *FeedLoader {
	return &FeedLoader{}
}

func (l *FeedLoader) Name() string { return "feed" }

func (l *FeedLoader) Match(locator string) bool {
	return !isURL(locator) && hasExt(locator, ".rss", ".atom", ".xml")
}

func (l *FeedLoader) Load(locator string) (Payload, error) {
	f, err := os.Open(locator)
	if err != nil {
		return nil, fmt.Errorf("read feed: %w", err)
	}
	defer f.Close()
	return parseFeed(f, locator)
}

func parseFeed(r io.Reader, source string) (Payload, error) {
	feed, err := gofeed.NewParser().Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	coll := &Collection{Source: source}
	for _, item := range feed.Items {
		coll.Items = append(coll.Items, &Text{
			Source:  source,
			Title:   item.Title,
			Content: feedItemText(item),
		})
	}
	return coll, nil
}

func feedItemText(item *gofeed.Item) string {
	var b strings.Builder
	if item.Title != "" {
		fmt.Fprintf(&b, "## %s\n", item.Title)
	}
	if item.Published != "" {
		fmt.Fprintf(&b, "Published: %s\n\n", item.Published)
	} else if item.Updated != "" {
		fmt.Fprintf(&b, "Updated: %s\n\n", item.Updated)
	}

	content := item.Content
	if content == "" {
		content = item.Description
	}
	if content != "" {
		// Feed bodies are frequently HTML.
		if strings.Contains(content, "<") && strings.Contains(content, ">") {
			if md, err := htmlToMarkdown(content); err == nil {
				content = md
			}
		}
		b.WriteString(content)
	}
	return strings.TrimSpace(b.String())
}
