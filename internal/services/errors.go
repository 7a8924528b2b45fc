package services

import "errors"

// Sign-up validation failures, in the order they are checked.
var (
	ErrEmailTaken        = errors.New("email already exists")
	ErrEmailTooShort     = errors.New("email must be greater than 3 characters")
	ErrFirstNameTooShort = errors.New("first name must be greater than 1 character")
	ErrPasswordMismatch  = errors.New("passwords don't match")
	ErrPasswordTooShort  = errors.New("password must be at least 7 characters")
	ErrEmailTooLong      = errors.New("email must be at most 150 characters")
	ErrFirstNameTooLong  = errors.New("first name must be at most 150 characters")
	ErrPasswordTooLong   = errors.New("password must be at most 72 bytes")
)

// Login failures.
var (
	ErrEmailNotFound     = errors.New("email does not exist")
	ErrIncorrectPassword = errors.New("incorrect password")
)

// Note failures.
var (
	ErrNoteNotFound   = errors.New("note not found")
	ErrNoteIncomplete = errors.New("note needs a title and a body")
	ErrTitleTooLong   = errors.New("title must be at most 100 characters")
	ErrBodyTooLong    = errors.New("body must be at most 500 characters")
)
