package mocks

import (
	"context"

	"github.com/monocle-dev/notebook/internal/models"
	"github.com/stretchr/testify/mock"
)

// NoteRepository is a testify mock of repository.NoteRepository.
type NoteRepository struct {
	mock.Mock
}

func (m *NoteRepository) ListAll(ctx context.Context) ([]models.Note, error) {
	args := m.Called(ctx)
	notes, _ := args.Get(0).([]models.Note)
	return notes, args.Error(1)
}

func (m *NoteRepository) ListByUser(ctx context.Context, userID uint) ([]models.Note, error) {
	args := m.Called(ctx, userID)
	notes, _ := args.Get(0).([]models.Note)
	return notes, args.Error(1)
}

func (m *NoteRepository) FindOwned(ctx context.Context, id, userID uint) (*models.Note, error) {
	args := m.Called(ctx, id, userID)
	note, _ := args.Get(0).(*models.Note)
	return note, args.Error(1)
}

func (m *NoteRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *NoteRepository) Create(ctx context.Context, note *models.Note) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *NoteRepository) Update(ctx context.Context, note *models.Note) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *NoteRepository) DeleteOwned(ctx context.Context, id, userID uint) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}
