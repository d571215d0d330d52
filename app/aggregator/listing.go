package aggregator

import (
	"context"

	"github.com/samber/lo"

	"github.com/vegvisr/sources-worker/app/registry"
)

// ListFeeds describes every registered source and feed. It performs no I/O.
func (a *Aggregator) ListFeeds() FeedListing {
	sources := a.registry.Sources()

	feeds := make([]FeedEntry, 0, a.registry.FeedCount())
	for _, s := range sources {
		for _, f := range s.Feeds {
			feeds = append(feeds, FeedEntry{
				SourceID:    s.ID,
				SourceName:  s.Name,
				ShortName:   shortName(s),
				FeedType:    f.Type,
				FeedURL:     f.URL,
				Description: s.Description,
				Categories:  categories(s),
				Color:       color(s),
				Logo:        logo(s),
			})
		}
	}

	return FeedListing{
		Success:      true,
		TotalSources: len(sources),
		TotalFeeds:   len(feeds),
		Sources: lo.Map(sources, func(s registry.Source, _ int) SourceSummary {
			return SourceSummary{
				ID:          s.ID,
				Name:        s.Name,
				ShortName:   shortName(s),
				Description: s.Description,
				Categories:  categories(s),
				FeedCount:   len(s.Feeds),
				Color:       color(s),
				Logo:        logo(s),
				BaseURL:     s.BaseURL,
			}
		}),
		Feeds: feeds,
	}
}

// Feed fetches one feed of one source and keeps at most limit items.
// ItemCount still reports the number of items in the feed.
func (a *Aggregator) Feed(ctx context.Context, sourceID, feedType string, limit int) (FeedResponse, error) {
	if feedType == "" {
		feedType = DefaultFeedType
	}
	if limit <= 0 {
		limit = DefaultViewLimit
	}

	source, ok := a.registry.Get(sourceID)
	if !ok {
		return FeedResponse{}, &UnknownSourceError{SourceID: sourceID, Available: a.registry.IDs()}
	}

	url, ok := source.FeedURL(feedType)
	if !ok {
		return FeedResponse{}, &UnknownFeedTypeError{SourceID: sourceID, FeedType: feedType, Available: source.FeedTypes()}
	}

	result := a.fetchAll(ctx, []target{{source: source, feedType: feedType, url: url}})[0].result
	if len(result.Items) > limit {
		result.Items = result.Items[:limit]
	}

	return FeedResponse{
		Result: result,
		Source: FeedSource{
			ID:          source.ID,
			Name:        source.Name,
			Description: source.Description,
		},
		FeedType: feedType,
	}, nil
}

// Logos returns the branding of every source keyed by id.
func (a *Aggregator) Logos() map[string]Logo {
	return lo.SliceToMap(a.registry.Sources(), func(s registry.Source) (string, Logo) {
		return s.ID, Logo{
			Name:      s.Name,
			ShortName: shortName(s),
			Color:     color(s),
			Logo:      s.Logo,
			BaseURL:   s.BaseURL,
		}
	})
}

// Logo returns the SVG markup for one source.
func (a *Aggregator) Logo(sourceID string) (string, error) {
	source, ok := a.registry.Get(sourceID)
	if !ok || source.Logo == "" {
		return "", &UnknownSourceError{SourceID: sourceID, Available: a.registry.IDs()}
	}
	return source.Logo, nil
}

func categories(s registry.Source) []string {
	if s.Categories == nil {
		return []string{}
	}
	return s.Categories
}
