package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monocle-dev/notebook/internal/types"
)

func newManager(t *testing.T) *SessionManager {
	t.Helper()
	m, err := NewSessionManager("test-secret", time.Hour)
	require.NoError(t, err)
	return m
}

func TestNewSessionManager_RejectsBadInput(t *testing.T) {
	_, err := NewSessionManager("", time.Hour)
	assert.Error(t, err)

	_, err = NewSessionManager("secret", 0)
	assert.Error(t, err)
}

func TestSessionManager_SessionRoundTrip(t *testing.T) {
	m := newManager(t)

	token, err := m.IssueSession(42)
	require.NoError(t, err)

	id, err := m.ParseSession(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
}

func TestSessionManager_RejectsTamperedAndForeignTokens(t *testing.T) {
	m := newManager(t)
	other, err := NewSessionManager("other-secret", time.Hour)
	require.NoError(t, err)

	foreign, err := other.IssueSession(1)
	require.NoError(t, err)

	_, err = m.ParseSession(foreign)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.ParseSession("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// A CSRF token is signed with the same key but must not act as a session.
	csrf, err := m.IssueCSRF(1)
	require.NoError(t, err)
	_, err = m.ParseSession(csrf)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionManager_SessionExpires(t *testing.T) {
	m := newManager(t)
	start := time.Now()
	m.now = func() time.Time { return start }

	token, err := m.IssueSession(7)
	require.NoError(t, err)

	m.now = func() time.Time { return start.Add(2 * time.Hour) }
	_, err = m.ParseSession(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionManager_CSRFBoundToUser(t *testing.T) {
	m := newManager(t)

	token, err := m.IssueCSRF(3)
	require.NoError(t, err)

	assert.True(t, m.VerifyCSRF(token, 3))
	assert.False(t, m.VerifyCSRF(token, 4))
	assert.False(t, m.VerifyCSRF("", 3))
}

func TestSessionManager_Flashes(t *testing.T) {
	m := newManager(t)

	in := []types.FlashMessage{
		{Category: types.CategoryError, Message: "Note not found."},
		{Category: types.CategoryMessage, Message: "Please log in to access this page."},
	}

	token, err := m.EncodeFlashes(in)
	require.NoError(t, err)

	assert.Equal(t, in, m.DecodeFlashes(token))
	assert.Nil(t, m.DecodeFlashes(""))
	assert.Nil(t, m.DecodeFlashes("tampered"))
}
