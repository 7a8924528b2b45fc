package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/monocle-dev/notebook/internal/models"
	"github.com/monocle-dev/notebook/internal/repository"
)

type NoteService struct {
	notes repository.NoteRepository
	now   func() time.Time
}

func NewNoteService(notes repository.NoteRepository) *NoteService {
	return &NoteService{notes: notes, now: time.Now}
}

// WithClock replaces the clock used to stamp notes.
func (s *NoteService) WithClock(now func() time.Time) *NoteService {
	s.now = now
	return s
}

// ListAll returns notes of every user. It backs the landing page.
func (s *NoteService) ListAll(ctx context.Context) ([]models.Note, error) {
	return s.notes.ListAll(ctx)
}

func (s *NoteService) ListForUser(ctx context.Context, userID uint) ([]models.Note, error) {
	return s.notes.ListByUser(ctx, userID)
}

func (s *NoteService) CountForUser(ctx context.Context, userID uint) (int64, error) {
	return s.notes.CountByUser(ctx, userID)
}

// Get returns ErrNoteNotFound both for missing notes and for notes owned by
// someone else.
func (s *NoteService) Get(ctx context.Context, id, userID uint) (*models.Note, error) {
	note, err := s.notes.FindOwned(ctx, id, userID)

	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("find note: %w", err)
	}

	return note, nil
}

// Create stores a note stamped with the current time. Both title and body
// must be present.
func (s *NoteService) Create(ctx context.Context, userID uint, title, body string) (*models.Note, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(body) == "" {
		return nil, ErrNoteIncomplete
	}

	if err := checkBounds(title, body); err != nil {
		return nil, err
	}

	note := &models.Note{
		Title:  title,
		Body:   body,
		Date:   s.now(),
		UserID: userID,
	}

	if err := s.notes.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}

	return note, nil
}

// Update overwrites title, body and date of an owned note. Empty values are
// stored as given.
func (s *NoteService) Update(ctx context.Context, id, userID uint, title, body string) (*models.Note, error) {
	note, err := s.Get(ctx, id, userID)

	if err != nil {
		return nil, err
	}

	if err := checkBounds(title, body); err != nil {
		return nil, err
	}

	note.Title = title
	note.Body = body
	note.Date = s.now()

	if err := s.notes.Update(ctx, note); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("update note: %w", err)
	}

	return note, nil
}

// Delete removes an owned note and reports how many notes the user has left.
func (s *NoteService) Delete(ctx context.Context, id, userID uint) (int64, error) {
	if err := s.notes.DeleteOwned(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, ErrNoteNotFound
		}
		return 0, fmt.Errorf("delete note: %w", err)
	}

	remaining, err := s.notes.CountByUser(ctx, userID)

	if err != nil {
		return 0, fmt.Errorf("count notes: %w", err)
	}

	return remaining, nil
}

func checkBounds(title, body string) error {
	if utf8.RuneCountInString(title) > models.MaxTitleLength {
		return ErrTitleTooLong
	}

	if utf8.RuneCountInString(body) > models.MaxBodyLength {
		return ErrBodyTooLong
	}

	return nil
}
