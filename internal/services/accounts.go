package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/monocle-dev/notebook/internal/auth"
	"github.com/monocle-dev/notebook/internal/models"
	"github.com/monocle-dev/notebook/internal/repository"
)

const (
	minEmailLength     = 4
	minFirstNameLength = 2
	minPasswordLength  = 7
	maxEmailLength     = 150
	maxFirstNameLength = 150
)

type SignUpInput struct {
	Email     string
	FirstName string
	Password1 string
	Password2 string
}

type AccountService struct {
	users  repository.UserRepository
	hasher *auth.PasswordHasher
}

func NewAccountService(users repository.UserRepository, hasher *auth.PasswordHasher) *AccountService {
	return &AccountService{users: users, hasher: hasher}
}

// NormalizeEmail is applied to every email before it reaches the store.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register validates the input rule by rule, stopping at the first failure,
// and stores the new user with a hashed password.
func (s *AccountService) Register(ctx context.Context, in SignUpInput) (*models.User, error) {
	email := NormalizeEmail(in.Email)
	firstName := strings.TrimSpace(in.FirstName)

	_, err := s.users.FindByEmail(ctx, email)

	switch {
	case err == nil:
		return nil, ErrEmailTaken
	case !errors.Is(err, repository.ErrNotFound):
		return nil, fmt.Errorf("look up email: %w", err)
	}

	if err := validateSignUp(email, firstName, in.Password1, in.Password2); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password1)

	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		FirstName:    firstName,
		PasswordHash: hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func validateSignUp(email, firstName, password1, password2 string) error {
	switch {
	case utf8.RuneCountInString(email) < minEmailLength:
		return ErrEmailTooShort
	case utf8.RuneCountInString(firstName) < minFirstNameLength:
		return ErrFirstNameTooShort
	case password1 != password2:
		return ErrPasswordMismatch
	case utf8.RuneCountInString(password1) < minPasswordLength:
		return ErrPasswordTooShort
	case utf8.RuneCountInString(email) > maxEmailLength:
		return ErrEmailTooLong
	case utf8.RuneCountInString(firstName) > maxFirstNameLength:
		return ErrFirstNameTooLong
	case len(password1) > auth.MaxPasswordBytes:
		return ErrPasswordTooLong
	}

	return nil
}

// Authenticate returns the user owning email when password matches.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.FindByEmail(ctx, NormalizeEmail(email))

	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEmailNotFound
		}
		return nil, fmt.Errorf("look up email: %w", err)
	}

	if !s.hasher.Verify(user.PasswordHash, password) {
		return nil, ErrIncorrectPassword
	}

	return user, nil
}

// CurrentUser loads the user a session points at. A user that no longer
// exists comes back as repository.ErrNotFound.
func (s *AccountService) CurrentUser(ctx context.Context, id uint) (*models.User, error) {
	return s.users.FindByID(ctx, id)
}
