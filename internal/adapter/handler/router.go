package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/streamchapter-team/stream-chapters/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	projectHandler *ProjectHandler
	chapterHandler *ChapterHandler
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, projectHandler *ProjectHandler, chapterHandler *ChapterHandler) *Router {
	return &Router{
		cfg:            cfg,
		projectHandler: projectHandler,
		chapterHandler: chapterHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupProjectRoutes(v1)
	rt.setupChapterRoutes(v1)
}

// setupProjectRoutes configures project and transcript routes
func (rt *Router) setupProjectRoutes(g *echo.Group) {
	projectGroup := g.Group("/projects")

	projectGroup.POST("/from-transcript-txt", rt.projectHandler.CreateFromTranscript)
	projectGroup.GET("/:id", rt.projectHandler.GetProject)
	projectGroup.GET("/:id/transcript", rt.projectHandler.GetTranscript)
	projectGroup.GET("/:id/chapters", rt.chapterHandler.ListChapters)
	projectGroup.POST("/:id/generate_chapters", rt.chapterHandler.GenerateChapters)
	projectGroup.GET("/:id/export/bilibili", rt.chapterHandler.ExportBilibili)
}

// setupChapterRoutes configures chapter routes
func (rt *Router) setupChapterRoutes(g *echo.Group) {
	chapterGroup := g.Group("/chapters")

	chapterGroup.PUT("/:id", rt.chapterHandler.UpdateChapter)
	chapterGroup.POST("/:id/regenerate", rt.chapterHandler.RegenerateChapter)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
