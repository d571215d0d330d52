package registry

import "slices"

// Feed is one named RSS endpoint of a source.
type Feed struct {
	Type string `yaml:"type" json:"type"`
	URL  string `yaml:"url" json:"url"`
}

// Source describes a registered institution or organization.
type Source struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	ShortName   string   `yaml:"short_name"`
	Description string   `yaml:"description"`
	BaseURL     string   `yaml:"base_url"`
	Color       string   `yaml:"color"`
	Logo        string   `yaml:"logo"`
	Feeds       []Feed   `yaml:"feeds"`
	Categories  []string `yaml:"categories"`
}

// FeedURL returns the URL registered under feedType.
func (s Source) FeedURL(feedType string) (string, bool) {
	for _, f := range s.Feeds {
		if f.Type == feedType {
			return f.URL, true
		}
	}
	return "", false
}

func (s Source) FeedTypes() []string {
	types := make([]string, 0, len(s.Feeds))
	for _, f := range s.Feeds {
		types = append(types, f.Type)
	}
	return types
}

func (s Source) HasCategory(category string) bool {
	return slices.Contains(s.Categories, category)
}

func (s Source) clone() Source {
	s.Feeds = slices.Clone(s.Feeds)
	s.Categories = slices.Clone(s.Categories)
	return s
}

type file struct {
	Sources []Source `yaml:"sources"`
}
