// Package aggregator merges items from many feeds into ranked search
// results and the fixed hearings and environment views.
package aggregator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/vegvisr/sources-worker/app/feed"
	"github.com/vegvisr/sources-worker/app/registry"
)

const (
	DefaultSearchLimit = 30
	DefaultDaysBack    = 30
	DefaultViewLimit   = 20
	DefaultFeedType    = "news"

	fallbackFeedType = "all"
	fallbackColor    = "#666666"
)

// Fetcher retrieves one feed. Implementations report failures in the
// Result instead of returning an error.
type Fetcher interface {
	Fetch(ctx context.Context, url string) feed.Result
}

type Aggregator struct {
	registry *registry.Registry
	fetcher  Fetcher
	filterer *feed.Filterer
	now      func() time.Time
}

func New(reg *registry.Registry, fetcher Fetcher) *Aggregator {
	return &Aggregator{
		registry: reg,
		fetcher:  fetcher,
		filterer: feed.NewFilterer(),
		now:      time.Now,
	}
}

// WithClock replaces the time source used for recency cutoffs.
func (a *Aggregator) WithClock(now func() time.Time) *Aggregator {
	a.now = now
	return a
}

func (a *Aggregator) Registry() *registry.Registry {
	return a.registry
}

type target struct {
	source   registry.Source
	feedType string
	url      string
	label    string
}

type fetched struct {
	target
	result feed.Result
}

// fetchAll fetches every target concurrently. The returned slice is in
// target order regardless of completion order.
func (a *Aggregator) fetchAll(ctx context.Context, targets []target) []fetched {
	out := make([]fetched, len(targets))

	var wg sync.WaitGroup
	for i, t := range targets {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out[i] = fetched{target: t, result: a.fetch(ctx, t.url)}
		}()
	}
	wg.Wait()

	return out
}

func (a *Aggregator) fetch(ctx context.Context, url string) (result feed.Result) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Feed fetch panicked", "feed", url, "panic", r)
			result = feed.Failure(url, fmt.Errorf("panic while fetching feed: %v", r))
		}
	}()

	result = a.fetcher.Fetch(ctx, url)
	if result.Items == nil {
		result.Items = []feed.Item{}
	}
	return result
}

func shortName(s registry.Source) string {
	if s.ShortName != "" {
		return s.ShortName
	}
	return strings.ToUpper(s.ID)
}

func color(s registry.Source) string {
	if s.Color != "" {
		return s.Color
	}
	return fallbackColor
}

// logo returns nil for sources without a logo so it serializes as null.
func logo(s registry.Source) *string {
	if s.Logo == "" {
		return nil
	}
	return &s.Logo
}

// newestFirst orders parsed dates descending. Missing dates count as the
// Unix epoch.
func newestFirst(x, y *feed.Timestamp) int {
	return dateOrEpoch(y).Compare(dateOrEpoch(x))
}

func dateOrEpoch(t *feed.Timestamp) time.Time {
	if t == nil {
		return time.Unix(0, 0).UTC()
	}
	return t.Time
}
