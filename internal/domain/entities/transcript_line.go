package entities

import (
	"time"

	"github.com/google/uuid"
)

// TranscriptLine is a single timestamped line of transcript text
type TranscriptLine struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ProjectID uuid.UUID `json:"project_id" gorm:"type:uuid;not null;index"`
	StartSec  int       `json:"start_sec" gorm:"not null"`
	EndSec    *int      `json:"end_sec,omitempty"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	Source    string    `json:"source" gorm:"type:varchar(20);default:'asr'"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (TranscriptLine) TableName() string {
	return "transcript_lines"
}

// EndOrStart returns the line's end offset, falling back to its start
// when no end was recorded.
func (l TranscriptLine) EndOrStart() int {
	if l.EndSec != nil {
		return *l.EndSec
	}
	return l.StartSec
}
