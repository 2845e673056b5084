package chapters

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	apperrors "github.com/streamchapter-team/stream-chapters/errors"
	"github.com/streamchapter-team/stream-chapters/internal/adapter/repository"
	"github.com/streamchapter-team/stream-chapters/internal/domain/entities"
	"github.com/streamchapter-team/stream-chapters/pkg/ai"
	"github.com/streamchapter-team/stream-chapters/pkg/timecode"
)

// ModelClient is the slice of the chat client the pipeline needs
type ModelClient interface {
	IsConfigured() bool
	ChatJSON(ctx context.Context, prompt string) (*ai.ChatResponse, error)
}

// GenerationLocker guards against concurrent generation runs per project
type GenerationLocker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Unlock(ctx context.Context, key string) error
}

// Service defines chapter generation methods
type Service interface {
	GenerateForProject(ctx context.Context, projectID uuid.UUID) ([]entities.Chapter, error)
	RegenerateChapter(ctx context.Context, chapterID uuid.UUID, newStartSec int) (*entities.Chapter, error)
	GenerateFromTranscript(ctx context.Context, lines []entities.TranscriptLine, maxChapters int) []entities.ChapterDraft
	RegenerateSingle(lines []entities.TranscriptLine, newStartSec int, existingTitle string, existingSummary *string) entities.ChapterDraft
}

// generationState enumerates the outcomes of the model path. The flow is
// pending -> parsed|unavailable -> final, so every failure branch funnels
// into the fallback without nested error handling.
type generationState int

const (
	statePending generationState = iota
	stateParsed
	stateUnavailable
)

// generationLockTTL outlives the model call timeout so an abandoned lock
// cannot wedge a project.
const generationLockTTL = 3 * time.Minute

type chapterService struct {
	projectRepo    *repository.ProjectRepository
	transcriptRepo *repository.TranscriptRepository
	chapterRepo    *repository.ChapterRepository
	model          ModelClient
	locker         GenerationLocker
	logger         *zap.Logger
}

// NewService constructs the chapter generation service. locker may be nil
// when no lock backend is configured.
func NewService(
	projectRepo *repository.ProjectRepository,
	transcriptRepo *repository.TranscriptRepository,
	chapterRepo *repository.ChapterRepository,
	model ModelClient,
	locker GenerationLocker,
	logger *zap.Logger,
) Service {
	return &chapterService{
		projectRepo:    projectRepo,
		transcriptRepo: transcriptRepo,
		chapterRepo:    chapterRepo,
		model:          model,
		locker:         locker,
		logger:         logger,
	}
}

// GenerateForProject runs the full pipeline for a project and replaces its
// stored chapter set with the result.
func (s *chapterService) GenerateForProject(ctx context.Context, projectID uuid.UUID) ([]entities.Chapter, error) {
	if s.locker != nil {
		lockKey := fmt.Sprintf("chapters:generate:%s", projectID)
		ok, err := s.locker.TryLock(ctx, lockKey, generationLockTTL)
		if err != nil {
			// A broken lock backend must not block generation.
			s.logger.Warn("generation lock unavailable, proceeding without it", zap.Error(err))
		} else if !ok {
			return nil, apperrors.ErrGenerationInProgress(projectID.String())
		} else {
			defer func() {
				if err := s.locker.Unlock(context.WithoutCancel(ctx), lockKey); err != nil {
					s.logger.Warn("failed to release generation lock", zap.Error(err))
				}
			}()
		}
	}

	project, err := s.projectRepo.GetProjectByID(ctx, projectID)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}
	if project == nil {
		return nil, apperrors.ErrProjectNotFound(projectID.String())
	}

	lines, err := s.transcriptRepo.ListLinesByProject(ctx, projectID)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}
	if len(lines) == 0 {
		return nil, apperrors.ErrNoTranscriptLines(projectID.String())
	}

	drafts := s.GenerateFromTranscript(ctx, lines, project.MaxChapters)

	chapters := make([]entities.Chapter, 0, len(drafts))
	for idx, draft := range drafts {
		order := idx + 1
		if draft.Order != nil {
			order = *draft.Order
		}
		chapters = append(chapters, entities.Chapter{
			ID:         uuid.New(),
			ProjectID:  projectID,
			Title:      draft.Title,
			StartSec:   draft.StartSec,
			EndSec:     draft.EndSec,
			Summary:    draft.Summary,
			Tags:       draft.Tags,
			Source:     draft.Source,
			Confidence: draft.Confidence,
			SortOrder:  order,
			Version:    1,
		})
	}

	if err := s.chapterRepo.ReplaceChaptersForProject(ctx, projectID, chapters); err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}

	source := ""
	if len(drafts) > 0 {
		source = drafts[0].Source
	}
	project.LastRunMeta = datatypes.NewJSONType(map[string]interface{}{
		"source":        source,
		"chapter_count": len(chapters),
		"generated_at":  time.Now().UTC().Format(time.RFC3339),
	})
	project.UpdatedAt = time.Now()
	if err := s.projectRepo.UpdateProject(ctx, project); err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}

	return s.chapterRepo.ListChaptersByProject(ctx, projectID)
}

// GenerateFromTranscript turns transcript lines into chapter drafts. The
// model path is tried once; any failure degrades to the deterministic
// fallback. No error from the model stage ever escapes to the caller.
func (s *chapterService) GenerateFromTranscript(ctx context.Context, lines []entities.TranscriptLine, maxChapters int) []entities.ChapterDraft {
	if len(lines) == 0 {
		return nil
	}

	sorted := make([]entities.TranscriptLine, len(lines))
	copy(sorted, lines)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartSec < sorted[j].StartSec
	})

	last := sorted[len(sorted)-1]
	durationSec := last.EndOrStart()
	if last.StartSec > durationSec {
		durationSec = last.StartSec
	}
	durationMinutes := durationSec / 60
	if durationMinutes < 1 {
		durationMinutes = 1
	}

	state := statePending
	var drafts []entities.ChapterDraft

	if !s.model.IsConfigured() {
		s.logger.Info("model client not configured, using equal-split fallback")
		state = stateUnavailable
	} else {
		prompt := BuildPrompt(sorted, durationMinutes)
		resp, err := s.model.ChatJSON(ctx, prompt)
		if err != nil {
			s.logger.Warn("model call failed, using equal-split fallback", zap.Error(err))
			state = stateUnavailable
		} else {
			var issues []ParseIssue
			drafts, issues = ParseModelResponse(resp)
			for _, issue := range issues {
				s.logger.Warn("skipping unusable model chapter element",
					zap.Int("element", issue.Index),
					zap.Error(issue.Err),
				)
			}
			if len(drafts) > 0 {
				state = stateParsed
			} else {
				s.logger.Warn("model response held no usable chapters, using equal-split fallback")
				state = stateUnavailable
			}
		}
	}

	if state != stateParsed {
		return EqualSplitFallback(lines, maxChapters)
	}

	snapped := SnapToTranscript(drafts, sorted)
	sort.SliceStable(snapped, func(i, j int) bool {
		oi, oj := 0, 0
		if snapped[i].Order != nil {
			oi = *snapped[i].Order
		}
		if snapped[j].Order != nil {
			oj = *snapped[j].Order
		}
		if oi != oj {
			return oi < oj
		}
		return snapped[i].StartSec < snapped[j].StartSec
	})

	limit := maxChapters
	if limit <= 0 {
		limit = 10
	}
	if len(snapped) > limit {
		snapped = snapped[:limit]
	}
	return snapped
}

// RegenerateChapter rewrites one stored chapter from a new start offset.
func (s *chapterService) RegenerateChapter(ctx context.Context, chapterID uuid.UUID, newStartSec int) (*entities.Chapter, error) {
	chapter, err := s.chapterRepo.GetChapterByID(ctx, chapterID)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}
	if chapter == nil {
		return nil, apperrors.ErrChapterNotFound(chapterID.String())
	}

	lines, err := s.transcriptRepo.ListLinesByProject(ctx, chapter.ProjectID)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}

	draft := s.RegenerateSingle(lines, newStartSec, chapter.Title, chapter.Summary)

	chapter.Title = draft.Title
	chapter.StartSec = draft.StartSec
	chapter.Summary = draft.Summary
	chapter.Source = draft.Source
	chapter.Confidence = draft.Confidence
	chapter.UpdatedAt = time.Now()

	if err := s.chapterRepo.UpdateChapter(ctx, chapter); err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}
	return chapter, nil
}

// RegenerateSingle builds a replacement chapter from a new start time,
// quoting the first transcript line at or after that offset. This is pure
// local templating; it never calls the model. Callers should pass lines
// sorted by start for predictable context selection.
func (s *chapterService) RegenerateSingle(lines []entities.TranscriptLine, newStartSec int, existingTitle string, existingSummary *string) entities.ChapterDraft {
	contextText := "No nearby transcript context."
	for _, line := range lines {
		if line.StartSec >= newStartSec {
			contextText = line.Text
			break
		}
	}

	summary := fmt.Sprintf("Auto-updated using nearby transcript: %s", truncateRunes(contextText, 120))
	confidence := 0.6
	return entities.ChapterDraft{
		Title:      fmt.Sprintf("Adjusted Chapter @ %s", timecode.FormatHMS(newStartSec)),
		StartSec:   newStartSec,
		Summary:    &summary,
		Source:     entities.ChapterSourceAIEdit,
		Confidence: &confidence,
	}
}

func truncateRunes(value string, limit int) string {
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	return string(runes[:limit])
}
