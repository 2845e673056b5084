package chapter

import (
	"time"

	"github.com/streamchapter-team/stream-chapters/internal/domain/entities"
)

// ChapterResponse represents a chapter in API responses
type ChapterResponse struct {
	ID         string    `json:"id"`
	ProjectID  string    `json:"project_id"`
	Title      string    `json:"title"`
	StartSec   int       `json:"start_sec"`
	EndSec     *int      `json:"end_sec,omitempty"`
	Summary    *string   `json:"summary,omitempty"`
	Tags       *string   `json:"tags,omitempty"`
	Source     string    `json:"source"`
	Confidence *float64  `json:"confidence,omitempty"`
	Order      int       `json:"order"`
	Version    int       `json:"version"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ChapterListResponse wraps an ordered chapter list
type ChapterListResponse struct {
	Chapters []ChapterResponse `json:"chapters"`
}

// FromEntity converts a chapter entity to its response shape
func FromEntity(c *entities.Chapter) ChapterResponse {
	return ChapterResponse{
		ID:         c.ID.String(),
		ProjectID:  c.ProjectID.String(),
		Title:      c.Title,
		StartSec:   c.StartSec,
		EndSec:     c.EndSec,
		Summary:    c.Summary,
		Tags:       c.Tags,
		Source:     c.Source,
		Confidence: c.Confidence,
		Order:      c.SortOrder,
		Version:    c.Version,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

// ListFromEntities converts chapter entities to a list response
func ListFromEntities(chapters []entities.Chapter) ChapterListResponse {
	out := make([]ChapterResponse, 0, len(chapters))
	for i := range chapters {
		out = append(out, FromEntity(&chapters[i]))
	}
	return ChapterListResponse{Chapters: out}
}
