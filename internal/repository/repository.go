package repository

import (
	"context"

	"github.com/monocle-dev/notebook/internal/models"
)

type UserRepository interface {
	// FindByEmail returns ErrNotFound when no user has the email.
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// FindByID returns ErrNotFound when the user does not exist.
	FindByID(ctx context.Context, id uint) (*models.User, error)

	// Create inserts the user and fills in its ID. A taken email yields ErrDuplicateEntry.
	Create(ctx context.Context, user *models.User) error
}

type NoteRepository interface {
	// ListAll returns every note in the store, newest first.
	ListAll(ctx context.Context) ([]models.Note, error)

	// ListByUser returns the notes owned by userID, newest first.
	ListByUser(ctx context.Context, userID uint) ([]models.Note, error)

	// FindOwned returns ErrNotFound unless the note exists and belongs to userID.
	FindOwned(ctx context.Context, id, userID uint) (*models.Note, error)

	CountByUser(ctx context.Context, userID uint) (int64, error)

	Create(ctx context.Context, note *models.Note) error

	// Update overwrites title, body and date of an owned note.
	Update(ctx context.Context, note *models.Note) error

	// DeleteOwned removes the note when owned by userID. It returns ErrNotFound otherwise.
	DeleteOwned(ctx context.Context, id, userID uint) error
}
