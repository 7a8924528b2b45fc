package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/monocle-dev/notebook/internal/models"
	"gorm.io/gorm"
)

const newestFirst = "date DESC, id DESC"

type GormNoteRepository struct {
	db *gorm.DB
}

func NewGormNoteRepository(db *gorm.DB) *GormNoteRepository {
	if db == nil {
		panic("database connection cannot be nil for GormNoteRepository")
	}
	return &GormNoteRepository{db: db}
}

func (r *GormNoteRepository) ListAll(ctx context.Context) ([]models.Note, error) {
	var notes []models.Note

	if err := r.db.WithContext(ctx).Order(newestFirst).Find(&notes).Error; err != nil {
		return nil, fmt.Errorf("gorm: list notes: %w", err)
	}

	return notes, nil
}

func (r *GormNoteRepository) ListByUser(ctx context.Context, userID uint) ([]models.Note, error) {
	var notes []models.Note

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order(newestFirst).
		Find(&notes).Error

	if err != nil {
		return nil, fmt.Errorf("gorm: list notes of user %d: %w", userID, err)
	}

	return notes, nil
}

func (r *GormNoteRepository) FindOwned(ctx context.Context, id, userID uint) (*models.Note, error) {
	var note models.Note

	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&note).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("gorm: find note %d: %w", id, err)
	}

	return &note, nil
}

func (r *GormNoteRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).Model(&models.Note{}).Where("user_id = ?", userID).Count(&count).Error

	if err != nil {
		return 0, fmt.Errorf("gorm: count notes of user %d: %w", userID, err)
	}

	return count, nil
}

func (r *GormNoteRepository) Create(ctx context.Context, note *models.Note) error {
	if err := r.db.WithContext(ctx).Create(note).Error; err != nil {
		return fmt.Errorf("gorm: create note: %w", err)
	}

	return nil
}

func (r *GormNoteRepository) Update(ctx context.Context, note *models.Note) error {
	result := r.db.WithContext(ctx).
		Model(&models.Note{}).
		Where("id = ? AND user_id = ?", note.ID, note.UserID).
		Updates(map[string]interface{}{
			"title": note.Title,
			"body":  note.Body,
			"date":  note.Date,
		})

	if result.Error != nil {
		return fmt.Errorf("gorm: update note %d: %w", note.ID, result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *GormNoteRepository) DeleteOwned(ctx context.Context, id, userID uint) error {
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Note{})

	if result.Error != nil {
		return fmt.Errorf("gorm: delete note %d: %w", id, result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
