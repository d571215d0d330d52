package feed

import (
	"bytes"
	"cmp"
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"
)

// Parser turns a raw feed document into a channel title and items.
type Parser interface {
	Run(data []byte) (string, []Item, error)
}

// RegexParser scans RSS markup with regular expressions. It accepts
// malformed documents and never fails; unknown structure yields no items.
type RegexParser struct{}

func NewRegexParser() *RegexParser {
	return &RegexParser{}
}

func (p *RegexParser) Run(data []byte) (string, []Item, error) {
	doc := string(data)

	blocks := Items(doc)
	items := make([]Item, 0, len(blocks))
	for _, block := range blocks {
		items = append(items, p.normalizeItem(block))
	}

	return ChannelTitle(doc), items, nil
}

func (p *RegexParser) normalizeItem(block string) Item {
	pubDate := Extract(block, "pubDate")

	return Item{
		Title:         Clean(Extract(block, "title")),
		Link:          Extract(block, "link"),
		Description:   Clean(Extract(block, "description")),
		PubDate:       pubDate,
		PubDateParsed: ParseDate(pubDate),
		Category:      Clean(Extract(block, "category")),
		GUID:          Extract(block, "guid"),
	}
}

// GofeedParser is a strict parser that also understands Atom and JSON Feed.
type GofeedParser struct {
	gofeedParser *gofeed.Parser
}

func NewGofeedParser() *GofeedParser {
	return &GofeedParser{
		gofeedParser: gofeed.NewParser(),
	}
}

func (p *GofeedParser) Run(data []byte) (string, []Item, error) {
	feed, err := p.gofeedParser.Parse(bytes.NewReader(data))
	if err != nil {
		return "", nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	items := make([]Item, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		items = append(items, p.normalizeItem(item))
	}

	return cmp.Or(strings.TrimSpace(feed.Title), UnknownFeedTitle), items, nil
}

func (p *GofeedParser) normalizeItem(item *gofeed.Item) Item {
	normalized := Item{
		Title:       Clean(item.Title),
		Link:        strings.TrimSpace(item.Link),
		Description: Clean(item.Description),
		PubDate:     strings.TrimSpace(cmp.Or(item.Published, item.Updated)),
		GUID:        strings.TrimSpace(item.GUID),
	}

	switch {
	case item.PublishedParsed != nil:
		normalized.PubDateParsed = NewTimestamp(item.PublishedParsed.UTC())
	case item.UpdatedParsed != nil:
		normalized.PubDateParsed = NewTimestamp(item.UpdatedParsed.UTC())
	default:
		normalized.PubDateParsed = ParseDate(normalized.PubDate)
	}

	if len(item.Categories) > 0 {
		normalized.Category = Clean(item.Categories[0])
	}

	return normalized
}
