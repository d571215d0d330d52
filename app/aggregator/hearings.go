package aggregator

import (
	"context"
	"log/slog"
	"slices"

	"github.com/vegvisr/sources-worker/app/feed"
)

const (
	hearingSnippetLen = 300
	allTopics         = "alle"
)

var hearingKeywords = []string{"høring", "høringsuttalelse", "konsultasjon", "innspill"}

// hearingSources are the news feeds scanned for hearings, with the label
// shown next to each hit.
var hearingSources = []viewFeed{
	{sourceID: "regjeringen", feedType: "news", label: "Regjeringen"},
	{sourceID: "nrk", feedType: "news", label: "NRK"},
	{sourceID: "naturvern", feedType: "news", label: "Naturvernforbundet"},
	{sourceID: "sabima", feedType: "news", label: "SABIMA"},
	{sourceID: "bellona", feedType: "news", label: "Bellona"},
}

// viewFeed is a fixed feed used by one of the curated views.
type viewFeed struct {
	sourceID string
	feedType string
	label    string
}

// viewTargets resolves fixed feeds against the registry, skipping any that
// are not registered.
func (a *Aggregator) viewTargets(feeds []viewFeed) []target {
	targets := make([]target, 0, len(feeds))
	for _, vf := range feeds {
		source, ok := a.registry.Get(vf.sourceID)
		if !ok {
			slog.Debug("Skipping unregistered view source", "source", vf.sourceID)
			continue
		}
		url, ok := source.FeedURL(vf.feedType)
		if !ok {
			slog.Debug("Skipping unregistered view feed", "source", vf.sourceID, "type", vf.feedType)
			continue
		}
		targets = append(targets, target{source: source, feedType: vf.feedType, url: url, label: vf.label})
	}
	return targets
}

// Hearings collects items that mention a public consultation, optionally
// narrowed to those that also mention topic.
func (a *Aggregator) Hearings(ctx context.Context, topic string, limit int) HearingsResponse {
	if limit <= 0 {
		limit = DefaultViewLimit
	}

	filters := []feed.Filter{
		{Fields: []string{"title", "description"}, Includes: hearingKeywords},
	}
	if topic != "" {
		filters = append(filters, feed.Filter{Fields: []string{"title", "description"}, Includes: []string{topic}})
	}

	hearings := []Hearing{}
	for _, f := range a.fetchAll(ctx, a.viewTargets(hearingSources)) {
		if !f.result.Success {
			continue
		}

		for _, item := range a.filterer.Run(f.result.Items, filters) {
			hearings = append(hearings, Hearing{
				Item:            item,
				Source:          f.label,
				SourceID:        f.source.ID,
				SourceShortName: shortName(f.source),
				SourceColor:     color(f.source),
				SourceLogo:      logo(f.source),
			})
		}
	}

	slices.SortStableFunc(hearings, func(x, y Hearing) int {
		return newestFirst(x.PubDateParsed, y.PubDateParsed)
	})
	if len(hearings) > limit {
		hearings = hearings[:limit]
	}

	shownTopic := topic
	if shownTopic == "" {
		shownTopic = allTopics
	}

	return HearingsResponse{
		Success:         true,
		Topic:           shownTopic,
		TotalHearings:   len(hearings),
		Hearings:        hearings,
		MarkdownSummary: hearingsMarkdown(topic, hearings),
	}
}

func hearingsMarkdown(topic string, hearings []Hearing) string {
	var md markdown

	md.writeParagraph("## Høringer og konsultasjoner")
	if topic != "" {
		md.writeParagraph("Filtrert på: \"%s\"", topic)
	}
	md.writeParagraph("Fant %d relevante saker", len(hearings))

	if len(hearings) == 0 {
		md.writeLine("Ingen høringer funnet i nyhetsfeedene akkurat nå. For flere høringer, besøk:")
		md.writeLine("- [Regjeringen.no høringer](https://www.regjeringen.no/no/dokument/hoyringar/)")
		md.writeParagraph("- [Stortinget.no høringer](https://www.stortinget.no/no/Saker-og-publikasjoner/Publikasjoner/Horingsinnkallinger/)")
	}

	for _, h := range hearings {
		md.writeEntry(h.Title, h.Link, h.Source, h.PubDate, h.Description, hearingSnippetLen)
		md.writeParagraph("---")
	}

	return md.String()
}
