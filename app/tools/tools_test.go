package tools

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/vegvisr/sources-worker/app/registry"
)

func TestDefinitions(t *testing.T) {
	defs := Definitions()

	var names []string
	for _, d := range defs {
		names = append(names, d.Function.Name)
		if d.Type != "function" {
			t.Errorf("Expected type function for %s, got %s", d.Function.Name, d.Type)
		}
		if d.Function.Parameters.Type != "object" {
			t.Errorf("Expected object parameters for %s", d.Function.Name)
		}
		if d.Function.Parameters.Required == nil {
			t.Errorf("Expected non-nil required list for %s", d.Function.Name)
		}
		if d.Function.Description == "" {
			t.Errorf("Expected description for %s", d.Function.Name)
		}
	}

	expected := []string{SearchTool, HearingsTool, EnvironmentTool, ListFeedsTool}
	if !slices.Equal(names, expected) {
		t.Errorf("Expected tools %v, got %v", expected, names)
	}

	search := defs[0].Function.Parameters
	if !slices.Equal(search.Required, []string{"query"}) {
		t.Errorf("Expected query required, got %v", search.Required)
	}
	if search.Properties["days"].Type != "number" {
		t.Errorf("Expected numeric days, got %s", search.Properties["days"].Type)
	}
	for _, name := range []string{"query", "sources", "category", "days", "limit"} {
		if _, ok := search.Properties[name]; !ok {
			t.Errorf("Expected search parameter %s", name)
		}
	}
	hearings := defs[1].Function.Parameters
	if hearings.Properties["limit"].Type != "number" || hearings.Properties["topic"].Type != "string" {
		t.Errorf("Expected hearings to take topic and limit, got %+v", hearings.Properties)
	}
	if len(defs[3].Function.Parameters.Properties) != 0 {
		t.Errorf("Expected list feeds to take no parameters")
	}
}

func TestDefinitionsJSON(t *testing.T) {
	data, err := json.Marshal(Definitions()[3])
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	expected := `{"type":"function","function":{"name":"sources_list_feeds","description":"List all available Norwegian RSS feeds and sources that can be searched.","parameters":{"type":"object","properties":{},"required":[]}}}`
	if string(data) != expected {
		t.Errorf("Expected %s, got %s", expected, data)
	}
}

func TestNewCatalog(t *testing.T) {
	reg, err := registry.Default()
	if err != nil {
		t.Fatalf("Expected default registry, got %v", err)
	}

	catalog := NewCatalog(reg, "https://sources.example")

	if len(catalog.Tools) != 4 {
		t.Errorf("Expected 4 tools, got %d", len(catalog.Tools))
	}
	if catalog.Usage.Provider != "sources" || catalog.Usage.BaseURL != "https://sources.example" {
		t.Errorf("Expected usage block, got %+v", catalog.Usage)
	}
	if len(catalog.AvailableSources) != 9 || catalog.AvailableSources[0].ID != "regjeringen" {
		t.Errorf("Expected 9 sources starting with regjeringen, got %+v", catalog.AvailableSources)
	}
}
