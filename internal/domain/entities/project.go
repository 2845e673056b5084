package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Project is one imported livestream transcript and its chapter set
type Project struct {
	ID          uuid.UUID                                  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title       string                                     `json:"title" gorm:"type:varchar(255);not null"`
	Platform    *string                                    `json:"platform,omitempty" gorm:"type:varchar(100)"`
	DurationSec *int                                       `json:"duration_sec,omitempty"`
	MaxChapters int                                        `json:"max_chapters" gorm:"default:10"`
	LastRunMeta datatypes.JSONType[map[string]interface{}] `json:"last_run_meta,omitempty" gorm:"type:jsonb;serializer:json"`
	CreatedAt   time.Time                                  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time                                  `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Project) TableName() string {
	return "projects"
}

// NewProject creates a new project
func NewProject(title string) *Project {
	return &Project{
		ID:          uuid.New(),
		Title:       title,
		MaxChapters: 10,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}
