package project

import (
	"time"

	"github.com/streamchapter-team/stream-chapters/internal/domain/entities"
)

// ProjectResponse represents a project in API responses
type ProjectResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Platform    *string   `json:"platform,omitempty"`
	DurationSec *int      `json:"duration_sec,omitempty"`
	MaxChapters int       `json:"max_chapters"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProjectWithCountsResponse adds record counts to a project
type ProjectWithCountsResponse struct {
	ProjectResponse
	TranscriptLineCount int64 `json:"transcript_line_count"`
	ChapterCount        int64 `json:"chapter_count"`
}

// CreateProjectResponse is returned after a transcript import
type CreateProjectResponse struct {
	Project             ProjectResponse `json:"project"`
	TranscriptLineCount int             `json:"transcript_line_count"`
}

// TranscriptLineResponse represents one transcript line
type TranscriptLineResponse struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`
	StartSec  int    `json:"start_sec"`
	EndSec    *int   `json:"end_sec,omitempty"`
	Text      string `json:"text"`
	Source    string `json:"source"`
}

// FromEntity converts a project entity to its response shape
func FromEntity(p *entities.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID.String(),
		Title:       p.Title,
		Platform:    p.Platform,
		DurationSec: p.DurationSec,
		MaxChapters: p.MaxChapters,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// LinesFromEntities converts transcript line entities to response shapes
func LinesFromEntities(lines []entities.TranscriptLine) []TranscriptLineResponse {
	out := make([]TranscriptLineResponse, 0, len(lines))
	for _, line := range lines {
		out = append(out, TranscriptLineResponse{
			ID:        line.ID.String(),
			ProjectID: line.ProjectID.String(),
			StartSec:  line.StartSec,
			EndSec:    line.EndSec,
			Text:      line.Text,
			Source:    line.Source,
		})
	}
	return out
}
