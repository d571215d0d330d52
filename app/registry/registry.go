package registry

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	"github.com/samber/lo"
	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

//go:embed sources.yml
var defaultSources []byte

// Registry is an immutable, ordered lookup table of sources. It is built
// once at startup and shared read-only between requests.
type Registry struct {
	sources []Source
	index   map[string]int
}

// New validates sources and builds a registry preserving their order.
func New(sources []Source) (*Registry, error) {
	if err := validate(sources); err != nil {
		return nil, err
	}

	r := &Registry{
		sources: make([]Source, len(sources)),
		index:   make(map[string]int, len(sources)),
	}
	for i, s := range sources {
		r.sources[i] = s.clone()
		r.index[s.ID] = i
	}
	return r, nil
}

// Default returns the registry compiled into the binary.
func Default() (*Registry, error) {
	return parse(defaultSources, "embedded sources.yml")
}

// Load reads a registry from a YAML file; an empty path selects the default.
func Load(path string) (*Registry, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sources file: %w", err)
	}
	return parse(data, path)
}

func parse(data []byte, origin string) (*Registry, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse YAML from %s: %w", origin, err)
	}

	r, err := New(f.Sources)
	if err != nil {
		return nil, oops.With("origin", origin).Wrapf(err, "invalid sources")
	}

	slog.Debug("Source registry loaded", "origin", origin, "sources", r.Len(), "feeds", r.FeedCount())
	return r, nil
}

func validate(sources []Source) error {
	if len(sources) == 0 {
		return oops.Errorf("at least one source is required")
	}

	seenIDs := make(map[string]bool, len(sources))
	seenURLs := make(map[string]string)

	for i, s := range sources {
		if s.ID == "" {
			return oops.With("index", i).Errorf("source id is required")
		}
		if seenIDs[s.ID] {
			return oops.With("source", s.ID).Errorf("duplicate source id")
		}
		seenIDs[s.ID] = true

		if s.Name == "" {
			return oops.With("source", s.ID).Errorf("source name is required")
		}
		if len(s.Feeds) == 0 {
			return oops.With("source", s.ID).Errorf("source must have at least one feed")
		}

		seenTypes := make(map[string]bool, len(s.Feeds))
		for _, f := range s.Feeds {
			if f.Type == "" || f.URL == "" {
				return oops.With("source", s.ID).Errorf("feed type and url are required")
			}
			if seenTypes[f.Type] {
				return oops.With("source", s.ID, "feed_type", f.Type).Errorf("duplicate feed type")
			}
			seenTypes[f.Type] = true

			if owner, ok := seenURLs[f.URL]; ok {
				return oops.With("source", s.ID, "owner", owner, "url", f.URL).Errorf("feed url already registered")
			}
			seenURLs[f.URL] = s.ID
		}
	}

	return nil
}

func (r *Registry) Len() int {
	return len(r.sources)
}

func (r *Registry) FeedCount() int {
	return lo.SumBy(r.sources, func(s Source) int { return len(s.Feeds) })
}

// Sources returns the sources in registry order.
func (r *Registry) Sources() []Source {
	return lo.Map(r.sources, func(s Source, _ int) Source { return s.clone() })
}

func (r *Registry) IDs() []string {
	return lo.Map(r.sources, func(s Source, _ int) string { return s.ID })
}

func (r *Registry) Get(id string) (Source, bool) {
	i, ok := r.index[id]
	if !ok {
		return Source{}, false
	}
	return r.sources[i].clone(), true
}
