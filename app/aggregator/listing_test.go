package aggregator

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/vegvisr/sources-worker/app/feed"
	"github.com/vegvisr/sources-worker/app/registry"
)

func TestListFeedsDefaultRegistry(t *testing.T) {
	reg, err := registry.Default()
	if err != nil {
		t.Fatalf("Expected default registry, got: %v", err)
	}
	fetcher := &stubFetcher{}

	listing := New(reg, fetcher).ListFeeds()

	if !listing.Success {
		t.Error("Expected success")
	}
	if listing.TotalSources != 9 || len(listing.Sources) != 9 {
		t.Errorf("Expected 9 sources, got %d/%d", listing.TotalSources, len(listing.Sources))
	}
	if listing.TotalFeeds != 16 || len(listing.Feeds) != 16 {
		t.Errorf("Expected 16 feeds, got %d/%d", listing.TotalFeeds, len(listing.Feeds))
	}
	if len(fetcher.calls) != 0 {
		t.Errorf("Expected no fetches, got %v", fetcher.calls)
	}

	first := listing.Feeds[0]
	if first.SourceID != "regjeringen" || first.FeedType != "news" {
		t.Errorf("Expected regjeringen/news first, got %s/%s", first.SourceID, first.FeedType)
	}

	ssb := listing.Sources[1]
	if ssb.ID != "ssb" || ssb.FeedCount != 4 {
		t.Errorf("Expected ssb with 4 feeds, got %s with %d", ssb.ID, ssb.FeedCount)
	}
}

func TestListFeedsFallbacks(t *testing.T) {
	src := testSource("x", nil, registry.Feed{Type: "news", URL: "http://x/rss"})
	src.Logo = ""
	agg := newTestAggregator(t, []registry.Source{src}, &stubFetcher{})

	listing := agg.ListFeeds()
	entry := listing.Feeds[0]
	if entry.ShortName != "X" || entry.Color != "#666666" || entry.Logo != nil {
		t.Errorf("Expected fallbacks, got %+v", entry)
	}
	if entry.Categories == nil {
		t.Error("Expected non-nil categories")
	}
}

func TestFeed(t *testing.T) {
	var items []feed.Item
	for i := 0; i < 5; i++ {
		items = append(items, feed.Item{Title: "item"})
	}
	sources := []registry.Source{
		testSource("a", nil,
			registry.Feed{Type: "news", URL: "http://a/rss"},
			registry.Feed{Type: "science", URL: "http://a/science"},
		),
	}
	fetcher := &stubFetcher{results: map[string]feed.Result{"http://a/rss": okResult("http://a/rss", items...)}}
	agg := newTestAggregator(t, sources, fetcher)

	resp, err := agg.Feed(context.Background(), "a", "", 3)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.FeedType != "news" {
		t.Errorf("Expected default feed type news, got %s", resp.FeedType)
	}
	if len(resp.Items) != 3 {
		t.Errorf("Expected 3 items after limit, got %d", len(resp.Items))
	}
	if resp.ItemCount != 5 {
		t.Errorf("Expected item count 5, got %d", resp.ItemCount)
	}
	if resp.Source.ID != "a" || resp.Source.Name != "a full name" {
		t.Errorf("Expected source metadata, got %+v", resp.Source)
	}

	resp, err = agg.Feed(context.Background(), "a", "science", 0)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.Success || resp.Items == nil {
		t.Errorf("Expected failed fetch with empty items, got %+v", resp.Result)
	}
}

func TestFeedUnknownSource(t *testing.T) {
	sources := searchSources()
	agg := newTestAggregator(t, sources, &stubFetcher{})

	_, err := agg.Feed(context.Background(), "doesnotexist", "news", 20)

	var unknown *UnknownSourceError
	if !errors.As(err, &unknown) {
		t.Fatalf("Expected UnknownSourceError, got %v", err)
	}
	if !slices.Equal(unknown.Available, []string{"a", "b", "c", "d"}) {
		t.Errorf("Expected all source ids, got %v", unknown.Available)
	}
}

func TestFeedUnknownType(t *testing.T) {
	agg := newTestAggregator(t, searchSources(), &stubFetcher{})

	_, err := agg.Feed(context.Background(), "a", "podcast", 20)

	var unknown *UnknownFeedTypeError
	if !errors.As(err, &unknown) {
		t.Fatalf("Expected UnknownFeedTypeError, got %v", err)
	}
	if !slices.Equal(unknown.Available, []string{"news"}) {
		t.Errorf("Expected available types [news], got %v", unknown.Available)
	}
}

func TestLogos(t *testing.T) {
	sources := searchSources()
	sources[3].Logo = ""
	agg := newTestAggregator(t, sources, &stubFetcher{})

	logos := agg.Logos()
	if len(logos) != 4 {
		t.Errorf("Expected 4 logos, got %d", len(logos))
	}
	if logos["a"].Logo != "<svg>a</svg>" || logos["a"].BaseURL != "https://a.example" {
		t.Errorf("Expected logo entry for a, got %+v", logos["a"])
	}

	svg, err := agg.Logo("b")
	if err != nil || svg != "<svg>b</svg>" {
		t.Errorf("Expected svg for b, got %q (%v)", svg, err)
	}

	if _, err := agg.Logo("d"); err == nil {
		t.Error("Expected error for source without logo")
	}
	if _, err := agg.Logo("zzz"); err == nil {
		t.Error("Expected error for unknown source")
	}
}
