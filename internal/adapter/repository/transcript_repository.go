package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/streamchapter-team/stream-chapters/internal/domain/entities"
)

// TranscriptRepository handles transcript line data operations
type TranscriptRepository struct {
	db *gorm.DB
}

// NewTranscriptRepository creates a new transcript repository
func NewTranscriptRepository(db *gorm.DB) *TranscriptRepository {
	return &TranscriptRepository{db: db}
}

// CreateLines inserts a batch of transcript lines
func (r *TranscriptRepository) CreateLines(ctx context.Context, lines []entities.TranscriptLine) error {
	if len(lines) == 0 {
		return errors.New("no transcript lines to create")
	}
	return r.db.WithContext(ctx).Create(&lines).Error
}

// ListLinesByProject retrieves a project's transcript lines ordered by start
func (r *TranscriptRepository) ListLinesByProject(ctx context.Context, projectID uuid.UUID) ([]entities.TranscriptLine, error) {
	var lines []entities.TranscriptLine
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("start_sec").
		Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// CountLinesByProject counts a project's transcript lines
func (r *TranscriptRepository) CountLinesByProject(ctx context.Context, projectID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.TranscriptLine{}).
		Where("project_id = ?", projectID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
