package aggregator

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/vegvisr/sources-worker/app/feed"
)

const searchMarkdownEntries = 10

// Search fetches the news feed of every selected source and ranks items by
// the share of distinct query words they contain.
func (a *Aggregator) Search(ctx context.Context, q SearchQuery) SearchResponse {
	if q.Limit <= 0 {
		q.Limit = DefaultSearchLimit
	}
	if q.DaysBack <= 0 {
		q.DaysBack = DefaultDaysBack
	}

	targets := a.searchTargets(q.SourceIDs, q.Category)
	fetchedFeeds := a.fetchAll(ctx, targets)

	words := queryWords(q.Query)
	cutoff := a.now().AddDate(0, 0, -q.DaysBack)

	results := []SearchResult{}
	failed := []string{}
	for _, f := range fetchedFeeds {
		if !f.result.Success {
			failed = append(failed, f.source.ID)
			continue
		}

		for _, item := range f.result.Items {
			if published, ok := item.Published(); ok && published.Before(cutoff) {
				continue
			}

			relevance := score(item, words)
			if relevance == 0 {
				continue
			}

			results = append(results, SearchResult{
				Source:          f.source.ID,
				SourceName:      f.source.Name,
				SourceShortName: shortName(f.source),
				SourceColor:     color(f.source),
				SourceLogo:      logo(f.source),
				SourceURL:       f.source.BaseURL,
				Title:           item.Title,
				Description:     item.Description,
				Link:            item.Link,
				PubDate:         item.PubDate,
				PubDateParsed:   item.PubDateParsed,
				Category:        item.Category,
				Relevance:       relevance,
			})
		}
	}

	slices.SortStableFunc(results, func(x, y SearchResult) int {
		if x.Relevance != y.Relevance {
			if x.Relevance > y.Relevance {
				return -1
			}
			return 1
		}
		return newestFirst(x.PubDateParsed, y.PubDateParsed)
	})

	total := len(results)
	if len(results) > q.Limit {
		results = results[:q.Limit]
	}

	slog.Debug("Search completed",
		"query", q.Query,
		"feeds", len(fetchedFeeds),
		"failed", len(failed),
		"matches", total)

	return SearchResponse{
		Success:         true,
		Query:           q.Query,
		TotalResults:    total,
		SourcesSearched: len(fetchedFeeds),
		FailedSources:   failed,
		DaysBack:        q.DaysBack,
		Results:         results,
		MarkdownSummary: searchMarkdown(q.Query, total, len(fetchedFeeds), q.DaysBack, results),
	}
}

// searchTargets resolves source ids to their "news" feed, or "all" when a
// source has no news feed. Unknown ids and sources without either are skipped.
func (a *Aggregator) searchTargets(sourceIDs []string, category string) []target {
	if len(sourceIDs) == 0 {
		sourceIDs = a.registry.IDs()
	}

	targets := make([]target, 0, len(sourceIDs))
	for _, id := range lo.Uniq(sourceIDs) {
		source, ok := a.registry.Get(id)
		if !ok {
			slog.Debug("Skipping unknown source", "source", id)
			continue
		}
		if category != "" && !source.HasCategory(category) {
			continue
		}

		feedType := DefaultFeedType
		url, ok := source.FeedURL(feedType)
		if !ok {
			feedType = fallbackFeedType
			url, ok = source.FeedURL(feedType)
		}
		if !ok {
			continue
		}

		targets = append(targets, target{source: source, feedType: feedType, url: url, label: source.Name})
	}

	return targets
}

// queryWords folds the query and splits it into distinct words.
func queryWords(query string) []string {
	return lo.Uniq(strings.Fields(feed.Fold(query)))
}

// score is the fraction of words found in the item's title, description
// and category.
func score(item feed.Item, words []string) float64 {
	if len(words) == 0 {
		return 0
	}

	text := feed.Fold(item.Title + " " + item.Description + " " + item.Category)
	matched := lo.CountBy(words, func(word string) bool {
		return strings.Contains(text, word)
	})

	return float64(matched) / float64(len(words))
}

func searchMarkdown(query string, total, feeds, daysBack int, results []SearchResult) string {
	var md markdown

	md.writeParagraph("## Søkeresultater: \"%s\"", query)
	md.writeParagraph("Fant %d treff fra %d kilder (siste %d dager)", total, feeds, daysBack)

	if len(results) == 0 {
		md.writeLine("Ingen treff funnet. Prøv et annet søkeord.")
		return md.String()
	}

	for _, r := range lo.Slice(results, 0, searchMarkdownEntries) {
		md.writeEntry(r.Title, r.Link, r.SourceName, r.PubDate, r.Description, 200)
	}

	return md.String()
}
