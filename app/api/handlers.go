package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vegvisr/sources-worker/app/aggregator"
	"github.com/vegvisr/sources-worker/app/feed"
	"github.com/vegvisr/sources-worker/app/tools"
)

const workerName = "sources-worker"

func NewHandler(agg *aggregator.Aggregator, publicURL, version string) *Handler {
	return &Handler{
		aggregator: agg,
		publicURL:  publicURL,
		version:    version,
	}
}

func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:           "healthy",
		Worker:           workerName,
		Version:          h.version,
		AvailableSources: h.aggregator.Registry().Len(),
		Timestamp:        feed.NewTimestamp(time.Now()),
	})
}

func (h *Handler) GetTools(c *gin.Context) {
	c.JSON(http.StatusOK, tools.NewCatalog(h.aggregator.Registry(), h.publicURL))
}

func (h *Handler) ListFeeds(c *gin.Context) {
	c.JSON(http.StatusOK, h.aggregator.ListFeeds())
}

func (h *Handler) GetFeed(c *gin.Context) {
	sourceID := c.Query("source")
	feedType := c.DefaultQuery("type", aggregator.DefaultFeedType)
	limit := intQuery(c, "limit", aggregator.DefaultViewLimit)

	resp, err := h.aggregator.Feed(c.Request.Context(), sourceID, feedType, limit)
	if err != nil {
		h.lookupError(c, err)
		return
	}

	slog.Debug("Feed served", "source", sourceID, "type", feedType, "success", resp.Success)
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetLogo(c *gin.Context) {
	svg, err := h.aggregator.Logo(c.Query("source"))
	if err != nil {
		h.lookupError(c, err)
		return
	}

	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, "image/svg+xml", []byte(svg))
}

func (h *Handler) GetLogos(c *gin.Context) {
	c.JSON(http.StatusOK, LogosResponse{
		Success: true,
		Logos:   h.aggregator.Logos(),
	})
}

func (h *Handler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		query = strings.TrimSpace(c.Query("q"))
	}
	if query == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing query parameter"})
		return
	}

	resp := h.aggregator.Search(c.Request.Context(), aggregator.SearchQuery{
		Query:     query,
		SourceIDs: csvQuery(c, "sources"),
		Category:  strings.TrimSpace(c.Query("category")),
		DaysBack:  intQuery(c, "days", aggregator.DefaultDaysBack),
		Limit:     intQuery(c, "limit", aggregator.DefaultSearchLimit),
	})

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetHearings(c *gin.Context) {
	topic := strings.TrimSpace(c.Query("topic"))
	limit := intQuery(c, "limit", aggregator.DefaultViewLimit)

	c.JSON(http.StatusOK, h.aggregator.Hearings(c.Request.Context(), topic, limit))
}

func (h *Handler) GetEnvironment(c *gin.Context) {
	limit := intQuery(c, "limit", aggregator.DefaultViewLimit)

	c.JSON(http.StatusOK, h.aggregator.Environment(c.Request.Context(), limit))
}

func (h *Handler) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResponse{
		Error:              "Not Found",
		Path:               c.Request.URL.Path,
		AvailableEndpoints: availableEndpoints,
	})
}

func (h *Handler) lookupError(c *gin.Context, err error) {
	var unknownSource *aggregator.UnknownSourceError
	var unknownType *aggregator.UnknownFeedTypeError

	switch {
	case errors.As(err, &unknownSource):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:            "Invalid source",
			AvailableSources: unknownSource.Available,
		})
	case errors.As(err, &unknownType):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:          "Invalid feed type",
			AvailableTypes: unknownType.Available,
		})
	default:
		slog.Error("Request failed", "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Internal Server Error",
			Message: err.Error(),
		})
	}
}

// intQuery reads a positive integer parameter, falling back to def when the
// value is absent, malformed or not positive.
func intQuery(c *gin.Context, name string, def int) int {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return def
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func csvQuery(c *gin.Context, name string) []string {
	var values []string
	for _, v := range strings.Split(c.Query(name), ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}
