package aggregator

import (
	"context"
	"slices"

	"github.com/samber/lo"
)

const environmentSnippetLen = 250

var environmentFeeds = []viewFeed{
	{sourceID: "regjeringen", feedType: "news", label: "Regjeringen"},
	{sourceID: "ssb", feedType: "environment", label: "SSB - Natur og miljø"},
	{sourceID: "nrk", feedType: "nature", label: "NRK - Klima"},
	{sourceID: "naturvern", feedType: "news", label: "Naturvernforbundet"},
	{sourceID: "sabima", feedType: "news", label: "SABIMA"},
	{sourceID: "wwf", feedType: "news", label: "WWF Norge"},
	{sourceID: "bellona", feedType: "news", label: "Bellona"},
	{sourceID: "cicero", feedType: "news", label: "CICERO"},
	{sourceID: "forskning", feedType: "environment", label: "Forskning.no - Miljø"},
}

// Environment merges the environment and nature feeds, newest first.
func (a *Aggregator) Environment(ctx context.Context, limit int) EnvironmentResponse {
	if limit <= 0 {
		limit = DefaultViewLimit
	}

	targets := a.viewTargets(environmentFeeds)

	items := []EnvironmentItem{}
	for _, f := range a.fetchAll(ctx, targets) {
		if !f.result.Success {
			continue
		}
		for _, item := range f.result.Items {
			items = append(items, EnvironmentItem{Item: item, Source: f.label})
		}
	}

	slices.SortStableFunc(items, func(x, y EnvironmentItem) int {
		return newestFirst(x.PubDateParsed, y.PubDateParsed)
	})
	if len(items) > limit {
		items = items[:limit]
	}

	var md markdown
	md.writeParagraph("## Miljø- og naturnyheter")
	md.writeParagraph("Siste %d saker fra offentlige kilder:", len(items))
	for _, item := range items {
		md.writeEntry(item.Title, item.Link, item.Source, item.PubDate, item.Description, environmentSnippetLen)
	}

	return EnvironmentResponse{
		Success:    true,
		TotalItems: len(items),
		Sources: lo.Map(targets, func(t target, _ int) string {
			return t.label
		}),
		Items:           items,
		MarkdownSummary: md.String(),
	}
}
