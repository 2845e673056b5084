package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/streamchapter-team/stream-chapters/errors"
	chapterdto "github.com/streamchapter-team/stream-chapters/internal/adapter/dto/chapter"
	"github.com/streamchapter-team/stream-chapters/internal/adapter/repository"
	"github.com/streamchapter-team/stream-chapters/internal/usecase/chapters"
	"github.com/streamchapter-team/stream-chapters/pkg/timecode"
)

// ChapterHandler handles chapter endpoints
type ChapterHandler struct {
	svc         chapters.Service
	projectRepo *repository.ProjectRepository
	chapterRepo *repository.ChapterRepository
	logger      *zap.Logger
}

// NewChapterHandler creates a new chapter handler
func NewChapterHandler(
	svc chapters.Service,
	projectRepo *repository.ProjectRepository,
	chapterRepo *repository.ChapterRepository,
	logger *zap.Logger,
) *ChapterHandler {
	return &ChapterHandler{
		svc:         svc,
		projectRepo: projectRepo,
		chapterRepo: chapterRepo,
		logger:      logger,
	}
}

// ListChapters returns a project's chapters in display order
// @Summary      List chapters
// @Tags         Chapters
// @Produce      json
// @Param        id   path      string  true  "Project ID (UUID)"
// @Success      200  {object}  chapterdto.ChapterListResponse
// @Failure      404  {object}  map[string]interface{}
// @Router       /projects/{id}/chapters [get]
func (h *ChapterHandler) ListChapters(c echo.Context) error {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("invalid project id"))
	}

	ctx := c.Request().Context()
	project, err := h.projectRepo.GetProjectByID(ctx, projectID)
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrDBQueryFailed(err))
	}
	if project == nil {
		return HandleError(h.logger, c, apperrors.ErrProjectNotFound(projectID.String()))
	}

	list, err := h.chapterRepo.ListChaptersByProject(ctx, projectID)
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrDBQueryFailed(err))
	}

	return HandleSuccess(h.logger, c, chapterdto.ListFromEntities(list))
}

// GenerateChapters runs the generation pipeline and replaces the stored set
// @Summary      Generate chapters
// @Description  Runs the transcript through the model pipeline (or the deterministic fallback) and stores the result
// @Tags         Chapters
// @Produce      json
// @Param        id   path      string  true  "Project ID (UUID)"
// @Success      200  {object}  chapterdto.ChapterListResponse
// @Failure      400  {object}  map[string]interface{}  "No transcript lines"
// @Failure      404  {object}  map[string]interface{}
// @Failure      409  {object}  map[string]interface{}  "Generation already running"
// @Router       /projects/{id}/generate_chapters [post]
func (h *ChapterHandler) GenerateChapters(c echo.Context) error {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("invalid project id"))
	}

	list, err := h.svc.GenerateForProject(c.Request().Context(), projectID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, chapterdto.ListFromEntities(list))
}

// UpdateChapter applies a partial update to a chapter
// @Summary      Update chapter
// @Tags         Chapters
// @Accept       json
// @Produce      json
// @Param        id       path      string                            true  "Chapter ID (UUID)"
// @Param        request  body      chapterdto.UpdateChapterRequest   true  "Fields to update"
// @Success      200      {object}  chapterdto.ChapterResponse
// @Failure      404      {object}  map[string]interface{}
// @Router       /chapters/{id} [put]
func (h *ChapterHandler) UpdateChapter(c echo.Context) error {
	chapterID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("invalid chapter id"))
	}

	var req chapterdto.UpdateChapterRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument(err.Error()))
	}

	ctx := c.Request().Context()
	chapter, err := h.chapterRepo.GetChapterByID(ctx, chapterID)
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrDBQueryFailed(err))
	}
	if chapter == nil {
		return HandleError(h.logger, c, apperrors.ErrChapterNotFound(chapterID.String()))
	}

	if req.Title != nil {
		chapter.Title = *req.Title
	}
	if req.Summary != nil {
		chapter.Summary = req.Summary
	}
	if req.StartSec != nil {
		chapter.StartSec = *req.StartSec
	}
	if req.EndSec != nil {
		chapter.EndSec = req.EndSec
	}
	if req.Tags != nil {
		chapter.Tags = req.Tags
	}
	if req.Order != nil {
		chapter.SortOrder = *req.Order
	}
	if req.Version != nil {
		chapter.Version = *req.Version
	}
	if req.Conf != nil {
		chapter.Confidence = req.Conf
	}
	chapter.UpdatedAt = time.Now()

	if err := h.chapterRepo.UpdateChapter(ctx, chapter); err != nil {
		return HandleError(h.logger, c, apperrors.ErrDBQueryFailed(err))
	}

	return HandleSuccess(h.logger, c, chapterdto.FromEntity(chapter))
}

// RegenerateChapter rewrites one chapter from a new start offset
// @Summary      Regenerate chapter
// @Description  Rebuilds a chapter's title and summary from the transcript context at a new start time
// @Tags         Chapters
// @Accept       json
// @Produce      json
// @Param        id       path      string                                true  "Chapter ID (UUID)"
// @Param        request  body      chapterdto.RegenerateChapterRequest   true  "New start offset in seconds"
// @Success      200      {object}  chapterdto.ChapterResponse
// @Failure      404      {object}  map[string]interface{}
// @Router       /chapters/{id}/regenerate [post]
func (h *ChapterHandler) RegenerateChapter(c echo.Context) error {
	chapterID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("invalid chapter id"))
	}

	var req chapterdto.RegenerateChapterRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument(err.Error()))
	}

	chapter, err := h.svc.RegenerateChapter(c.Request().Context(), chapterID, req.NewStartSec)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, chapterdto.FromEntity(chapter))
}

// ExportBilibili renders the chapter list as a bilibili timestamp block
// @Summary      Export bilibili timestamps
// @Description  Returns plain text "HH:MM:SS Title" lines ordered by (order, start)
// @Tags         Chapters
// @Produce      plain
// @Param        id   path      string  true  "Project ID (UUID)"
// @Success      200  {string}  string
// @Failure      404  {object}  map[string]interface{}
// @Router       /projects/{id}/export/bilibili [get]
func (h *ChapterHandler) ExportBilibili(c echo.Context) error {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("invalid project id"))
	}

	ctx := c.Request().Context()
	project, err := h.projectRepo.GetProjectByID(ctx, projectID)
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrDBQueryFailed(err))
	}
	if project == nil {
		return HandleError(h.logger, c, apperrors.ErrProjectNotFound(projectID.String()))
	}

	list, err := h.chapterRepo.ListChaptersByProject(ctx, projectID)
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrDBQueryFailed(err))
	}

	lines := make([]string, 0, len(list))
	for _, ch := range list {
		lines = append(lines, fmt.Sprintf("%s %s", timecode.FormatHMS(ch.StartSec), ch.Title))
	}
	return c.String(http.StatusOK, strings.Join(lines, "\n"))
}
