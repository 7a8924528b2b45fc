package handlers

import (
	"errors"

	"github.com/monocle-dev/notebook/internal/services"
)

// Texts shown to users in flash messages.
const (
	MsgEmailNotFound     = "Email does not exist."
	MsgIncorrectPassword = "Incorrect password, try again."
	MsgNoteNotFound      = "Note not found."
)

var signUpMessages = []struct {
	err     error
	message string
}{
	{services.ErrEmailTaken, "Email already exists."},
	{services.ErrEmailTooShort, "Email must be greater than 3 characters."},
	{services.ErrFirstNameTooShort, "First name must be greater than 1 character."},
	{services.ErrPasswordMismatch, "Passwords don't match."},
	{services.ErrPasswordTooShort, "Password must be at least 7 characters."},
	{services.ErrEmailTooLong, "Email must be at most 150 characters."},
	{services.ErrFirstNameTooLong, "First name must be at most 150 characters."},
	{services.ErrPasswordTooLong, "Password must be at most 72 bytes."},
}

var noteMessages = []struct {
	err     error
	message string
}{
	{services.ErrTitleTooLong, "Title must be at most 100 characters."},
	{services.ErrBodyTooLong, "Note must be at most 500 characters."},
}

// SignUpMessage returns the text for a sign-up validation error, or false
// when err is not one.
func SignUpMessage(err error) (string, bool) {
	for _, m := range signUpMessages {
		if errors.Is(err, m.err) {
			return m.message, true
		}
	}
	return "", false
}

func noteMessage(err error) (string, bool) {
	for _, m := range noteMessages {
		if errors.Is(err, m.err) {
			return m.message, true
		}
	}
	return "", false
}
