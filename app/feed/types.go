package feed

import (
	"encoding/json"
	"time"
)

const UnknownFeedTitle = "Unknown Feed"

// isoLayout matches the millisecond UTC form used by JavaScript clients.
const isoLayout = "2006-01-02T15:04:05.000Z"

// Timestamp is a time.Time that serializes as an ISO-8601 UTC string.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) *Timestamp {
	return &Timestamp{Time: t}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.UTC().Format(isoLayout))
}

// Item is one normalized feed entry.
type Item struct {
	Title         string     `json:"title"`
	Link          string     `json:"link"`
	Description   string     `json:"description"`
	PubDate       string     `json:"pubDate"`
	PubDateParsed *Timestamp `json:"pubDateParsed"`
	Category      string     `json:"category"`
	GUID          string     `json:"guid"`
}

// Published reports the parsed publication date, if any.
func (i Item) Published() (time.Time, bool) {
	if i.PubDateParsed == nil {
		return time.Time{}, false
	}
	return i.PubDateParsed.Time, true
}

// Result is the outcome of fetching one feed. Failed results carry an
// error message and an empty, non-nil item list.
type Result struct {
	Success   bool       `json:"success"`
	FeedTitle string     `json:"feedTitle,omitempty"`
	FeedURL   string     `json:"feedUrl"`
	ItemCount int        `json:"itemCount"`
	Items     []Item     `json:"items"`
	FetchedAt *Timestamp `json:"fetchedAt,omitempty"`
	Error     string     `json:"error,omitempty"`
}

func Failure(url string, err error) Result {
	return Result{
		Success: false,
		FeedURL: url,
		Items:   []Item{},
		Error:   err.Error(),
	}
}
