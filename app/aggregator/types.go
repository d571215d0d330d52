package aggregator

import (
	"github.com/vegvisr/sources-worker/app/feed"
)

type SearchQuery struct {
	Query     string
	SourceIDs []string // empty means every registered source
	Category  string
	DaysBack  int
	Limit     int
}

type SearchResult struct {
	Source          string          `json:"source"`
	SourceName      string          `json:"sourceName"`
	SourceShortName string          `json:"sourceShortName"`
	SourceColor     string          `json:"sourceColor"`
	SourceLogo      *string         `json:"sourceLogo"`
	SourceURL       string          `json:"sourceUrl"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Link            string          `json:"link"`
	PubDate         string          `json:"pubDate"`
	PubDateParsed   *feed.Timestamp `json:"pubDateParsed"`
	Category        string          `json:"category"`
	Relevance       float64         `json:"relevance"`
}

type SearchResponse struct {
	Success         bool           `json:"success"`
	Query           string         `json:"query"`
	TotalResults    int            `json:"totalResults"`
	SourcesSearched int            `json:"sourcesSearched"`
	FailedSources   []string       `json:"failedSources"`
	DaysBack        int            `json:"daysBack"`
	Results         []SearchResult `json:"results"`
	MarkdownSummary string         `json:"markdown_summary"`
}

type FeedEntry struct {
	SourceID    string   `json:"sourceId"`
	SourceName  string   `json:"sourceName"`
	ShortName   string   `json:"shortName"`
	FeedType    string   `json:"feedType"`
	FeedURL     string   `json:"feedUrl"`
	Description string   `json:"description"`
	Categories  []string `json:"categories"`
	Color       string   `json:"color"`
	Logo        *string  `json:"logo"`
}

type SourceSummary struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	ShortName   string   `json:"shortName"`
	Description string   `json:"description"`
	Categories  []string `json:"categories"`
	FeedCount   int      `json:"feedCount"`
	Color       string   `json:"color"`
	Logo        *string  `json:"logo"`
	BaseURL     string   `json:"baseUrl"`
}

type FeedListing struct {
	Success      bool            `json:"success"`
	TotalSources int             `json:"totalSources"`
	TotalFeeds   int             `json:"totalFeeds"`
	Sources      []SourceSummary `json:"sources"`
	Feeds        []FeedEntry     `json:"feeds"`
}

type FeedSource struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// FeedResponse is a single fetched feed annotated with its source.
type FeedResponse struct {
	feed.Result
	Source   FeedSource `json:"source"`
	FeedType string     `json:"feedType"`
}

type Hearing struct {
	feed.Item
	Source          string  `json:"source"`
	SourceID        string  `json:"sourceId"`
	SourceShortName string  `json:"sourceShortName"`
	SourceColor     string  `json:"sourceColor"`
	SourceLogo      *string `json:"sourceLogo"`
}

type HearingsResponse struct {
	Success         bool      `json:"success"`
	Topic           string    `json:"topic"`
	TotalHearings   int       `json:"totalHearings"`
	Hearings        []Hearing `json:"hearings"`
	MarkdownSummary string    `json:"markdown_summary"`
}

type EnvironmentItem struct {
	feed.Item
	Source string `json:"source"`
}

type EnvironmentResponse struct {
	Success         bool              `json:"success"`
	TotalItems      int               `json:"totalItems"`
	Sources         []string          `json:"sources"`
	Items           []EnvironmentItem `json:"items"`
	MarkdownSummary string            `json:"markdown_summary"`
}

type Logo struct {
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	Color     string `json:"color"`
	Logo      string `json:"logo"`
	BaseURL   string `json:"baseUrl"`
}
