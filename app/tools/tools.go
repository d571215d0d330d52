// Package tools describes the service operations as OpenAI-style function
// definitions for LLM tool calling.
package tools

import (
	"github.com/samber/lo"

	"github.com/vegvisr/sources-worker/app/registry"
)

const (
	SearchTool      = "sources_search"
	HearingsTool    = "sources_get_hearings"
	EnvironmentTool = "sources_environment_news"
	ListFeedsTool   = "sources_list_feeds"
)

type Definition struct {
	Type     string   `json:"type"`
	Function Function `json:"function"`
}

type Function struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Parameters  Parameters `json:"parameters"`
}

type Parameters struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required"`
}

type Property struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

const searchDescription = `Search Norwegian government, news, research, and environmental sources for articles and reports.

Use this when users ask about:
- Norwegian government news and policy
- Environment/nature/climate news
- Research and statistics
- Public hearings (høringer)

Available sources: Regjeringen (government), SSB (statistics), NRK (news), Forskning.no (research), Naturvernforbundet, SABIMA (biodiversity), WWF, Bellona (environment), CICERO (climate)

Returns articles with links to original sources.`

const hearingsDescription = `Search for public hearings (høringer) from the Norwegian government and news sources.

Searches regjeringen.no and other sources for hearing-related content.

Use when users ask about:
- Public hearings
- Ways to participate in policy
- Current consultations
- Høringer på norsk`

const environmentDescription = `Get the latest environment and nature news from Norwegian sources.

Aggregates news from: Regjeringen, SSB (statistics), NRK Klima, Naturvernforbundet, SABIMA, WWF, Bellona, CICERO, Forskning.no

Use when users ask about:
- Environment news
- Nature conservation updates
- Climate policy news
- Biodiversity
- Miljønyheter
- Naturvern`

// Definitions returns the callable operations and their parameter schemas.
func Definitions() []Definition {
	return []Definition{
		function(SearchTool, searchDescription, map[string]Property{
			"query": {
				Type:        "string",
				Description: `Search query in Norwegian or English (e.g., "naturmangfold", "climate change", "rovdyr", "biologisk mangfold", "høring")`,
			},
			"sources": {
				Type:        "string",
				Description: "Comma-separated source IDs (optional). Available: regjeringen, ssb, nrk, forskning, naturvern, sabima, wwf, bellona, cicero",
			},
			"category": {
				Type:        "string",
				Description: `Only search sources in this category (e.g., "government", "news", "environment")`,
			},
			"days": {
				Type:        "number",
				Description: "How many days back to search (default: 30)",
			},
			"limit": {
				Type:        "number",
				Description: "Maximum number of results (default: 30)",
			},
		}, "query"),
		function(HearingsTool, hearingsDescription, map[string]Property{
			"topic": {
				Type:        "string",
				Description: `Filter by topic (e.g., "naturvern", "klima", "biodiversitet", "mineral")`,
			},
			"limit": {
				Type:        "number",
				Description: "Maximum number of hearings (default: 20)",
			},
		}),
		function(EnvironmentTool, environmentDescription, map[string]Property{
			"limit": {
				Type:        "number",
				Description: "Maximum number of articles (default: 20)",
			},
		}),
		function(ListFeedsTool, "List all available Norwegian RSS feeds and sources that can be searched.", map[string]Property{}),
	}
}

func function(name, description string, properties map[string]Property, required ...string) Definition {
	if required == nil {
		required = []string{}
	}

	return Definition{
		Type: "function",
		Function: Function{
			Name:        name,
			Description: description,
			Parameters: Parameters{
				Type:       "object",
				Properties: properties,
				Required:   required,
			},
		},
	}
}

type Usage struct {
	Description string `json:"description"`
	Provider    string `json:"provider"`
	BaseURL     string `json:"baseUrl"`
}

type AvailableSource struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Categories  []string `json:"categories"`
}

// Catalog is the tool discovery document served to orchestrators.
type Catalog struct {
	Tools            []Definition      `json:"tools"`
	Usage            Usage             `json:"usage"`
	AvailableSources []AvailableSource `json:"availableSources"`
}

func NewCatalog(reg *registry.Registry, baseURL string) Catalog {
	return Catalog{
		Tools: Definitions(),
		Usage: Usage{
			Description: "Search Norwegian government and public sources",
			Provider:    "sources",
			BaseURL:     baseURL,
		},
		AvailableSources: lo.Map(reg.Sources(), func(s registry.Source, _ int) AvailableSource {
			return AvailableSource{
				ID:          s.ID,
				Name:        s.Name,
				Description: s.Description,
				Categories:  lo.Ternary(s.Categories == nil, []string{}, s.Categories),
			}
		}),
	}
}
