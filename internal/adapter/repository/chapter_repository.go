package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/streamchapter-team/stream-chapters/internal/domain/entities"
)

// ChapterRepository handles chapter data operations
type ChapterRepository struct {
	db *gorm.DB
}

// NewChapterRepository creates a new chapter repository
func NewChapterRepository(db *gorm.DB) *ChapterRepository {
	return &ChapterRepository{db: db}
}

// GetChapterByID retrieves a chapter by ID
func (r *ChapterRepository) GetChapterByID(ctx context.Context, id uuid.UUID) (*entities.Chapter, error) {
	var chapter entities.Chapter
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&chapter).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &chapter, nil
}

// ListChaptersByProject retrieves a project's chapters ordered for display
func (r *ChapterRepository) ListChaptersByProject(ctx context.Context, projectID uuid.UUID) ([]entities.Chapter, error) {
	var chapters []entities.Chapter
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("sort_order, start_sec").
		Find(&chapters).Error; err != nil {
		return nil, err
	}
	return chapters, nil
}

// CountChaptersByProject counts a project's chapters
func (r *ChapterRepository) CountChaptersByProject(ctx context.Context, projectID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Chapter{}).
		Where("project_id = ?", projectID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ReplaceChaptersForProject atomically swaps a project's chapter set
func (r *ChapterRepository) ReplaceChaptersForProject(ctx context.Context, projectID uuid.UUID, chapters []entities.Chapter) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).Delete(&entities.Chapter{}).Error; err != nil {
			return err
		}
		if len(chapters) == 0 {
			return nil
		}
		return tx.Create(&chapters).Error
	})
}

// UpdateChapter updates a chapter
func (r *ChapterRepository) UpdateChapter(ctx context.Context, chapter *entities.Chapter) error {
	if chapter == nil {
		return errors.New("chapter cannot be nil")
	}
	return r.db.WithContext(ctx).
		Model(&entities.Chapter{}).
		Where("id = ?", chapter.ID).
		Save(chapter).Error
}
