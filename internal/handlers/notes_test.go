package handlers_test

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monocle-dev/notebook/internal/handlers"
	"github.com/monocle-dev/notebook/internal/models"
)

func TestScenario_RegisterAddDelete(t *testing.T) {
	app := newTestApp(t)
	c := app.client(t)

	rec := c.signUp("a@b.com", "Al", "pass1234", "pass1234")
	require.Equal(t, "/note_list", rec.Header().Get("Location"))

	rec = c.get("/note_list")
	require.Equal(t, "/", rec.Header().Get("Location"))

	rec = c.addNote("X", "Y")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/note_list", rec.Header().Get("Location"))

	rec = c.get("/note_list")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "X")
	assert.Contains(t, body, "<p class=\"mb-0\">Y</p>")
	assert.Contains(t, body, app.today())

	notes := app.notesOf(t, "a@b.com")
	require.Len(t, notes, 1)

	rec = c.get(fmt.Sprintf("/delete/%d", notes[0].ID))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Delete note?")
	assert.Len(t, app.notesOf(t, "a@b.com"), 1, "the confirmation page must not delete")

	rec = c.post(fmt.Sprintf("/delete/%d", notes[0].ID), url.Values{"csrf_token": {c.csrf()}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Empty(t, app.notesOf(t, "a@b.com"))

	assert.Equal(t, 1.0, testutil.ToFloat64(app.metrics.NotesCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(app.metrics.NotesDeleted))
	assert.Equal(t, 1.0, testutil.ToFloat64(app.metrics.Registrations))
}

func TestViewNote_RoundTrip(t *testing.T) {
	app := newTestApp(t)
	c := app.registered(t, "a@b.com")

	c.addNote("Groceries", "milk")
	note := app.notesOf(t, "a@b.com")[0]

	rec := c.get(fmt.Sprintf("/note/%d", note.ID))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `<h1 class="note-title">Groceries</h1>`)
	assert.Contains(t, rec.Body.String(), "<p>milk</p>")
	assert.Contains(t, rec.Body.String(), app.today())
}

func TestViewNote_ForeignOrMissingIsNotFound(t *testing.T) {
	app := newTestApp(t)
	alice := app.registered(t, "alice@b.com")
	bob := app.registered(t, "bob@b.com")

	bob.addNote("bob secret title", "bob secret body")
	note := app.notesOf(t, "bob@b.com")[0]

	for _, path := range []string{
		fmt.Sprintf("/note/%d", note.ID),
		fmt.Sprintf("/note/%d", note.ID+1000),
		"/note/not-a-number",
	} {
		rec := alice.get(path)
		assert.Equal(t, http.StatusSeeOther, rec.Code, path)
		assert.Equal(t, "/note_list", rec.Header().Get("Location"), path)
		assert.NotContains(t, rec.Body.String(), "bob secret", path)

		// Alice has no notes, so the list sends her on to / where the flash shows.
		landing := alice.get("/")
		assert.Contains(t, landing.Body.String(), handlers.MsgNoteNotFound, path)
	}
}

func TestAddNote_IncompleteIsSilentlyIgnored(t *testing.T) {
	app := newTestApp(t)
	c := app.registered(t, "a@b.com")

	for _, form := range []url.Values{
		{"title": {"only title"}},
		{"body": {"only body"}},
		{"title": {" "}, "body": {"blank title"}},
	} {
		form.Set("csrf_token", c.csrf())
		rec := c.post("/add", form)
		assert.Equal(t, "/note_list", rec.Header().Get("Location"))
	}

	assert.Empty(t, app.notesOf(t, "a@b.com"))

	landing := c.get("/")
	assert.NotContains(t, landing.Body.String(), "flash-error")
}

func TestAddNote_OversizedTitleIsReported(t *testing.T) {
	app := newTestApp(t)
	c := app.registered(t, "a@b.com")

	c.addNote(strings.Repeat("t", 101), "body")

	assert.Empty(t, app.notesOf(t, "a@b.com"))
	assert.Contains(t, c.get("/").Body.String(), "Title must be at most 100 characters.")
}

func TestForms_RequireCSRFToken(t *testing.T) {
	app := newTestApp(t)
	c := app.registered(t, "a@b.com")
	other := app.registered(t, "other@b.com")

	rec := c.post("/add", url.Values{"title": {"x"}, "body": {"y"}})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = c.post("/add", url.Values{"title": {"x"}, "body": {"y"}, "csrf_token": {other.csrf()}})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	assert.Empty(t, app.notesOf(t, "a@b.com"))
}

func TestNoteList_OwnNotesNewestFirstAcrossYears(t *testing.T) {
	app := newTestApp(t)
	alice := app.registered(t, "alice@b.com")
	bob := app.registered(t, "bob@b.com")

	app.now = time.Date(2023, time.December, 31, 12, 0, 0, 0, time.Local)
	alice.addNote("december", "old")
	app.now = time.Date(2024, time.January, 2, 12, 0, 0, 0, time.Local)
	alice.addNote("january", "new")
	bob.addNote("bobs note", "hidden")

	body := alice.get("/note_list").Body.String()

	jan := strings.Index(body, "january")
	dec := strings.Index(body, "december")
	require.NotEqual(t, -1, jan)
	require.NotEqual(t, -1, dec)
	assert.Less(t, jan, dec)
	assert.Contains(t, body, "01-02-2024")
	assert.Contains(t, body, "12-31-2023")
	assert.NotContains(t, body, "bobs note")
}

func TestIndex_ListsEveryUsersNotes(t *testing.T) {
	app := newTestApp(t)
	alice := app.registered(t, "alice@b.com")
	bob := app.registered(t, "bob@b.com")

	alice.addNote("alice note", "a")
	bob.addNote("bob note", "b")

	body := alice.get("/").Body.String()
	assert.Contains(t, body, "alice note")
	assert.Contains(t, body, "bob note")

	// Only her own note links to the edit form.
	aliceNote := app.notesOf(t, "alice@b.com")[0]
	bobNote := app.notesOf(t, "bob@b.com")[0]
	assert.Contains(t, body, fmt.Sprintf(`href="/edit/%d"`, aliceNote.ID))
	assert.NotContains(t, body, fmt.Sprintf(`href="/edit/%d"`, bobNote.ID))
}

func TestEditNote(t *testing.T) {
	app := newTestApp(t)
	alice := app.registered(t, "alice@b.com")
	bob := app.registered(t, "bob@b.com")

	alice.addNote("title", "body")
	note := app.notesOf(t, "alice@b.com")[0]
	path := fmt.Sprintf("/edit/%d", note.ID)

	t.Run("form shows current values", func(t *testing.T) {
		rec := alice.get(path)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `value="title"`)
		assert.Contains(t, rec.Body.String(), ">body</textarea>")
	})

	t.Run("foreign user cannot see or change it", func(t *testing.T) {
		rec := bob.get(path)
		assert.Equal(t, "/note_list", rec.Header().Get("Location"))

		rec = bob.post(path, url.Values{"title": {"hacked"}, "body": {"hacked"}, "csrf_token": {bob.csrf()}})
		assert.Equal(t, "/note_list", rec.Header().Get("Location"))

		got := app.notesOf(t, "alice@b.com")[0]
		assert.Equal(t, "title", got.Title)
		assert.Equal(t, "body", got.Body)
	})

	t.Run("owner overwrites everything, even with empty values", func(t *testing.T) {
		app.now = app.now.AddDate(0, 0, 3)

		rec := alice.post(path, url.Values{"title": {""}, "body": {"rewritten"}, "csrf_token": {alice.csrf()}})
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/note_list", rec.Header().Get("Location"))

		got := app.notesOf(t, "alice@b.com")[0]
		assert.Equal(t, "", got.Title)
		assert.Equal(t, "rewritten", got.Body)
		assert.Equal(t, app.today(), got.Stamp())
	})

	t.Run("oversized body is rejected", func(t *testing.T) {
		rec := alice.post(path, url.Values{"title": {"t"}, "body": {strings.Repeat("b", 501)}, "csrf_token": {alice.csrf()}})
		assert.Equal(t, path, rec.Header().Get("Location"))
		assert.Equal(t, "rewritten", app.notesOf(t, "alice@b.com")[0].Body)
	})
}

func TestDeleteNote(t *testing.T) {
	app := newTestApp(t)
	alice := app.registered(t, "alice@b.com")
	bob := app.registered(t, "bob@b.com")

	alice.addNote("one", "1")
	alice.addNote("two", "2")
	bob.addNote("bobs", "b")

	aliceNotes := app.notesOf(t, "alice@b.com")
	bobNote := app.notesOf(t, "bob@b.com")[0]

	t.Run("foreign id is a no-op", func(t *testing.T) {
		rec := alice.post(fmt.Sprintf("/delete/%d", bobNote.ID), url.Values{"csrf_token": {alice.csrf()}})
		assert.Equal(t, "/note_list", rec.Header().Get("Location"))
		assert.Len(t, app.notesOf(t, "bob@b.com"), 1)

		rec = alice.get(fmt.Sprintf("/delete/%d", bobNote.ID))
		assert.Equal(t, "/note_list", rec.Header().Get("Location"))
	})

	t.Run("owner with notes left returns to the list", func(t *testing.T) {
		rec := alice.post(fmt.Sprintf("/delete/%d", aliceNotes[0].ID), url.Values{"csrf_token": {alice.csrf()}})
		assert.Equal(t, "/note_list", rec.Header().Get("Location"))

		left := app.notesOf(t, "alice@b.com")
		require.Len(t, left, 1)
		assert.Equal(t, aliceNotes[1].ID, left[0].ID)
		assert.Len(t, app.notesOf(t, "bob@b.com"), 1)
	})

	t.Run("last note sends the owner to the landing page", func(t *testing.T) {
		rec := alice.post(fmt.Sprintf("/delete/%d", aliceNotes[1].ID), url.Values{"csrf_token": {alice.csrf()}})
		assert.Equal(t, "/", rec.Header().Get("Location"))
		assert.Empty(t, app.notesOf(t, "alice@b.com"))
	})

	t.Run("plain GET never deletes", func(t *testing.T) {
		bob.get(fmt.Sprintf("/delete/%d", bobNote.ID))
		assert.Len(t, app.notesOf(t, "bob@b.com"), 1)
	})

	var total int64
	require.NoError(t, app.conn.Model(&models.Note{}).Count(&total).Error)
	assert.EqualValues(t, 1, total)
}
