package feed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultUserAgent = "Vegvisr-Sources-Worker/1.0 (https://vegvisr.org)"
	acceptHeader     = "application/rss+xml, application/xml, text/xml"
)

// Observer receives one call per completed fetch.
type Observer interface {
	ObserveFetch(feedURL string, success bool, duration time.Duration)
}

type nopObserver struct{}

func (nopObserver) ObserveFetch(string, bool, time.Duration) {}

type Fetcher struct {
	client   *resty.Client
	parser   Parser
	timeout  time.Duration
	observer Observer
	now      func() time.Time
}

func NewFetcher(parser Parser, userAgent string, timeout time.Duration) *Fetcher {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	client := resty.New().
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", acceptHeader)

	return &Fetcher{
		client:   client,
		parser:   parser,
		timeout:  timeout,
		observer: nopObserver{},
		now:      time.Now,
	}
}

func (f *Fetcher) WithObserver(observer Observer) *Fetcher {
	if observer != nil {
		f.observer = observer
	}
	return f
}

// Fetch downloads and parses one feed. It never returns an error: every
// failure, including a panic in the parser, becomes an unsuccessful Result.
func (f *Fetcher) Fetch(ctx context.Context, url string) (result Result) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			result = Failure(url, fmt.Errorf("panic while processing feed: %v", r))
		}

		f.observer.ObserveFetch(url, result.Success, time.Since(start))
		if result.Success {
			slog.Debug("Feed fetched", "feed", url, "items", result.ItemCount, "duration", time.Since(start))
		} else {
			slog.Warn("Feed fetch failed", "feed", url, "error", result.Error)
		}
	}()

	data, err := f.fetchFeed(ctx, url)
	if err != nil {
		return Failure(url, err)
	}

	title, items, err := f.parser.Run(data)
	if err != nil {
		return Failure(url, err)
	}
	if items == nil {
		items = []Item{}
	}

	return Result{
		Success:   true,
		FeedTitle: title,
		FeedURL:   url,
		ItemCount: len(items),
		Items:     items,
		FetchedAt: NewTimestamp(f.now().UTC()),
	}
}

func (f *Fetcher) fetchFeed(ctx context.Context, url string) ([]byte, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	resp, err := f.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("Failed to fetch feed: %d", resp.StatusCode())
	}

	return resp.Body(), nil
}
