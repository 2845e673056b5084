package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/streamchapter-team/stream-chapters/errors"
	projectdto "github.com/streamchapter-team/stream-chapters/internal/adapter/dto/project"
	"github.com/streamchapter-team/stream-chapters/internal/adapter/repository"
	"github.com/streamchapter-team/stream-chapters/internal/domain/entities"
	"github.com/streamchapter-team/stream-chapters/internal/usecase/chapters"
)

// TranscriptArchiver stores the raw transcript text a project was imported
// from. Archiving is best-effort; failures are logged and never fail the
// import.
type TranscriptArchiver interface {
	ArchiveTranscript(ctx context.Context, projectID string, content string) error
}

// ProjectHandler handles project and transcript endpoints
type ProjectHandler struct {
	projectRepo    *repository.ProjectRepository
	transcriptRepo *repository.TranscriptRepository
	chapterRepo    *repository.ChapterRepository
	archiver       TranscriptArchiver
	logger         *zap.Logger
}

// NewProjectHandler creates a new project handler. archiver may be nil when
// object storage is not configured.
func NewProjectHandler(
	projectRepo *repository.ProjectRepository,
	transcriptRepo *repository.TranscriptRepository,
	chapterRepo *repository.ChapterRepository,
	archiver TranscriptArchiver,
	logger *zap.Logger,
) *ProjectHandler {
	return &ProjectHandler{
		projectRepo:    projectRepo,
		transcriptRepo: transcriptRepo,
		chapterRepo:    chapterRepo,
		archiver:       archiver,
		logger:         logger,
	}
}

// CreateFromTranscript imports raw transcript text as a new project
// @Summary      Create project from transcript text
// @Description  Parses timestamped transcript text and creates a project with its transcript lines
// @Tags         Projects
// @Accept       json
// @Produce      json
// @Param        request  body      projectdto.CreateFromTranscriptRequest  true  "Project title and transcript text"
// @Success      200      {object}  projectdto.CreateProjectResponse
// @Failure      400      {object}  map[string]interface{}  "No transcript lines found"
// @Router       /projects/from-transcript-txt [post]
func (h *ProjectHandler) CreateFromTranscript(c echo.Context) error {
	var req projectdto.CreateFromTranscriptRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument(err.Error()))
	}

	parsed := chapters.ParseTranscriptTxt(req.TranscriptTxt)
	if len(parsed) == 0 {
		return HandleError(h.logger, c, apperrors.ErrTranscriptEmpty())
	}

	durationSec := 0
	for _, line := range parsed {
		end := line.EndSec
		if line.StartSec > end {
			end = line.StartSec
		}
		if end > durationSec {
			durationSec = end
		}
	}

	project := entities.NewProject(req.Title)
	project.Platform = req.Platform
	project.DurationSec = &durationSec
	if req.MaxChapters != nil && *req.MaxChapters > 0 {
		project.MaxChapters = *req.MaxChapters
	}

	ctx := c.Request().Context()
	if err := h.projectRepo.CreateProject(ctx, project); err != nil {
		return HandleError(h.logger, c, apperrors.ErrDBQueryFailed(err))
	}

	lines := make([]entities.TranscriptLine, 0, len(parsed))
	for _, p := range parsed {
		endSec := p.EndSec
		lines = append(lines, entities.TranscriptLine{
			ID:        uuid.New(),
			ProjectID: project.ID,
			StartSec:  p.StartSec,
			EndSec:    &endSec,
			Text:      p.Text,
			Source:    "asr",
		})
	}
	if err := h.transcriptRepo.CreateLines(ctx, lines); err != nil {
		return HandleError(h.logger, c, apperrors.ErrDBQueryFailed(err))
	}

	if h.archiver != nil {
		if err := h.archiver.ArchiveTranscript(ctx, project.ID.String(), req.TranscriptTxt); err != nil {
			h.logger.Warn("failed to archive raw transcript",
				zap.String("project_id", project.ID.String()),
				zap.Error(err),
			)
		}
	}

	return HandleSuccess(h.logger, c, projectdto.CreateProjectResponse{
		Project:             projectdto.FromEntity(project),
		TranscriptLineCount: len(lines),
	})
}

// GetProject returns a project with its record counts
// @Summary      Get project
// @Tags         Projects
// @Produce      json
// @Param        id   path      string  true  "Project ID (UUID)"
// @Success      200  {object}  projectdto.ProjectWithCountsResponse
// @Failure      404  {object}  map[string]interface{}
// @Router       /projects/{id} [get]
func (h *ProjectHandler) GetProject(c echo.Context) error {
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

	lineCount, err := h.transcriptRepo.CountLinesByProject(ctx, projectID)
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrDBQueryFailed(err))
	}
	chapterCount, err := h.chapterRepo.CountChaptersByProject(ctx, projectID)
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrDBQueryFailed(err))
	}

	return HandleSuccess(h.logger, c, projectdto.ProjectWithCountsResponse{
		ProjectResponse:     projectdto.FromEntity(project),
		TranscriptLineCount: lineCount,
		ChapterCount:        chapterCount,
	})
}

// GetTranscript returns a project's transcript lines ordered by start
// @Summary      Get transcript lines
// @Tags         Projects
// @Produce      json
// @Param        id   path      string  true  "Project ID (UUID)"
// @Success      200  {array}   projectdto.TranscriptLineResponse
// @Failure      404  {object}  map[string]interface{}
// @Router       /projects/{id}/transcript [get]
func (h *ProjectHandler) GetTranscript(c echo.Context) error {
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

	lines, err := h.transcriptRepo.ListLinesByProject(ctx, projectID)
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrDBQueryFailed(err))
	}

	return HandleSuccess(h.logger, c, projectdto.LinesFromEntities(lines))
}
