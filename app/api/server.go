package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	sloghttp "github.com/samber/slog-http"
)

// NewServer creates the gin engine with all routes configured.
func NewServer(handler *Handler, metrics http.Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		slog.Error("Handler panicked", "path", c.Request.URL.Path, "panic", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Internal Server Error",
			Message: fmt.Sprint(recovered),
		})
	}))

	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, x-user-role, x-user-email, x-user-id")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	setupRoutes(r, handler, metrics)

	return r
}

func setupRoutes(r *gin.Engine, handler *Handler, metrics http.Handler) {
	r.GET("/health", handler.HealthCheck)
	r.GET("/api/tools", handler.GetTools)

	r.GET("/feeds", handler.ListFeeds)
	r.GET("/feed", handler.GetFeed)
	r.GET("/logo", handler.GetLogo)
	r.GET("/logos", handler.GetLogos)

	r.GET("/search", handler.Search)
	r.GET("/hearings", handler.GetHearings)
	r.GET("/environment", handler.GetEnvironment)

	if metrics != nil {
		r.GET("/metrics", gin.WrapH(metrics))
	}

	r.NoRoute(handler.NotFound)
}

// Wrap adds structured access logging around the engine.
func Wrap(engine http.Handler, logger *slog.Logger) http.Handler {
	return sloghttp.New(logger)(sloghttp.Recovery(engine))
}
