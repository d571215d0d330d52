package api

import (
	"github.com/vegvisr/sources-worker/app/aggregator"
	"github.com/vegvisr/sources-worker/app/feed"
)

type Handler struct {
	aggregator *aggregator.Aggregator
	publicURL  string
	version    string
}

type HealthResponse struct {
	Status           string          `json:"status"`
	Worker           string          `json:"worker"`
	Version          string          `json:"version"`
	AvailableSources int             `json:"availableSources"`
	Timestamp        *feed.Timestamp `json:"timestamp"`
}

type LogosResponse struct {
	Success bool                       `json:"success"`
	Logos   map[string]aggregator.Logo `json:"logos"`
}

type ErrorResponse struct {
	Error              string   `json:"error"`
	Message            string   `json:"message,omitempty"`
	Path               string   `json:"path,omitempty"`
	AvailableSources   []string `json:"availableSources,omitempty"`
	AvailableTypes     []string `json:"availableTypes,omitempty"`
	AvailableEndpoints []string `json:"availableEndpoints,omitempty"`
}

var availableEndpoints = []string{
	"GET /feeds - List available RSS feeds with logos",
	"GET /feed?source=regjeringen&type=news - Get specific feed",
	"GET /logo?source=ssb - Get SVG logo for a source",
	"GET /logos - Get all logos as JSON",
	"GET /search?query=naturmangfold - Search across sources",
	"GET /hearings?topic=naturvern - Get open hearings",
	"GET /environment - Get environment/nature news",
	"GET /api/tools - AI function calling definitions",
	"GET /health - Health check",
	"GET /metrics - Prometheus metrics",
}
