package feed

import (
	"regexp"
	"strings"
	"sync"
)

var (
	itemPattern         = regexp.MustCompile(`(?i)<item(?:\s[^>]*)?>([\s\S]*?)</item>`)
	channelTitlePattern = regexp.MustCompile(`(?i)<channel>[\s\S]*?<title>(?:<!\[CDATA\[)?(.*?)(?:\]\]>)?</title>`)

	tagPatterns sync.Map // tag name -> *tagPattern
)

type tagPattern struct {
	cdata *regexp.Regexp
	plain *regexp.Regexp
}

func patternsFor(tag string) *tagPattern {
	if p, ok := tagPatterns.Load(tag); ok {
		return p.(*tagPattern)
	}

	quoted := regexp.QuoteMeta(tag)
	p := &tagPattern{
		cdata: regexp.MustCompile(`(?i)<` + quoted + `[^>]*><!\[CDATA\[([\s\S]*?)\]\]></` + quoted + `>`),
		plain: regexp.MustCompile(`(?i)<` + quoted + `[^>]*>([\s\S]*?)</` + quoted + `>`),
	}
	actual, _ := tagPatterns.LoadOrStore(tag, p)
	return actual.(*tagPattern)
}

// Extract returns the trimmed text of the first tag element in fragment,
// preferring a CDATA-wrapped occurrence. A missing tag yields "".
func Extract(fragment, tag string) string {
	if tag == "" || fragment == "" {
		return ""
	}

	p := patternsFor(tag)
	if m := p.cdata.FindStringSubmatch(fragment); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := p.plain.FindStringSubmatch(fragment); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// ChannelTitle returns the first <title> inside <channel>.
func ChannelTitle(doc string) string {
	m := channelTitlePattern.FindStringSubmatch(doc)
	if m == nil {
		return UnknownFeedTitle
	}
	return strings.TrimSpace(m[1])
}

// Items returns the inner XML of every <item> element in document order.
func Items(doc string) []string {
	matches := itemPattern.FindAllStringSubmatch(doc, -1)
	blocks := make([]string, 0, len(matches))
	for _, m := range matches {
		blocks = append(blocks, m[1])
	}
	return blocks
}
