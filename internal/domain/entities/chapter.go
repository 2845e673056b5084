package entities

import (
	"time"

	"github.com/google/uuid"
)

// Chapter provenance values
const (
	ChapterSourceLLM    = "auto_llm"  // model-proposed, snapped to the transcript
	ChapterSourceStub   = "auto_stub" // deterministic equal-split fallback
	ChapterSourceAIEdit = "ai_edit"   // single-chapter regeneration
)

// Chapter is a stored titled time range within a project
type Chapter struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ProjectID  uuid.UUID `json:"project_id" gorm:"type:uuid;not null;index"`
	Title      string    `json:"title" gorm:"type:varchar(255);not null"`
	StartSec   int       `json:"start_sec" gorm:"not null"`
	EndSec     *int      `json:"end_sec,omitempty"`
	Summary    *string   `json:"summary,omitempty" gorm:"type:text"`
	Tags       *string   `json:"tags,omitempty" gorm:"type:varchar(255)"` // comma-separated
	Source     string    `json:"source" gorm:"type:varchar(20);default:'auto'"`
	Confidence *float64  `json:"confidence,omitempty"`
	SortOrder  int       `json:"order" gorm:"column:sort_order;default:1"`
	Version    int       `json:"version" gorm:"default:1"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Chapter) TableName() string {
	return "chapters"
}

// ChapterDraft is a transient chapter candidate flowing through the
// generation pipeline. Each stage returns a fresh slice; only the final
// drafts are persisted as Chapter rows.
type ChapterDraft struct {
	Title      string
	StartSec   int
	EndSec     *int
	Summary    *string
	Tags       *string
	Source     string
	Confidence *float64
	Order      *int
}
