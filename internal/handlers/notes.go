package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/monocle-dev/notebook/internal/models"
	"github.com/monocle-dev/notebook/internal/services"
	"github.com/monocle-dev/notebook/internal/types"
	"github.com/monocle-dev/notebook/internal/utils"
)

func toNoteViews(notes []models.Note, userID uint) []types.NoteView {
	views := make([]types.NoteView, 0, len(notes))

	for _, note := range notes {
		views = append(views, toNoteView(note, userID))
	}

	return views
}

func toNoteView(note models.Note, userID uint) types.NoteView {
	return types.NoteView{
		ID:    note.ID,
		Title: note.Title,
		Body:  note.Body,
		Date:  note.Stamp(),
		Mine:  note.UserID == userID,
	}
}

// Index lists the notes of every user.
func (h *Handler) Index(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		h.redirect(ctx, "/login")
		return
	}

	notes, err := h.notes.ListAll(ctx.Request.Context())

	if err != nil {
		h.internalError(ctx, err, "Failed to list notes")
		return
	}

	h.render(ctx, http.StatusOK, "home.html", gin.H{"Notes": toNoteViews(notes, userID)})
}

func (h *Handler) NoteList(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		h.redirect(ctx, "/login")
		return
	}

	notes, err := h.notes.ListForUser(ctx.Request.Context(), userID)

	if err != nil {
		h.internalError(ctx, err, "Failed to list user notes")
		return
	}

	if len(notes) == 0 {
		h.redirect(ctx, "/")
		return
	}

	h.render(ctx, http.StatusOK, "note_list.html", gin.H{"Notes": toNoteViews(notes, userID)})
}

func (h *Handler) ViewNote(ctx *gin.Context) {
	note, ok := h.ownedNote(ctx)

	if !ok {
		return
	}

	h.render(ctx, http.StatusOK, "note.html", gin.H{"Note": toNoteView(*note, note.UserID)})
}

func (h *Handler) AddNote(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		h.redirect(ctx, "/login")
		return
	}

	_, err = h.notes.Create(ctx.Request.Context(), userID, ctx.PostForm("title"), ctx.PostForm("body"))

	switch {
	case err == nil:
		h.metrics.NotesCreated.Inc()
	case errors.Is(err, services.ErrNoteIncomplete):
		// Nothing to store; the form is simply shown again.
	default:
		message, ok := noteMessage(err)
		if !ok {
			h.internalError(ctx, err, "Failed to create note")
			return
		}
		h.flash(ctx, types.CategoryError, message)
	}

	h.redirect(ctx, "/note_list")
}

func (h *Handler) EditNotePage(ctx *gin.Context) {
	note, ok := h.ownedNote(ctx)

	if !ok {
		return
	}

	h.render(ctx, http.StatusOK, "edit_note.html", gin.H{"Note": toNoteView(*note, note.UserID)})
}

func (h *Handler) EditNote(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		h.redirect(ctx, "/login")
		return
	}

	noteID, err := utils.GetNoteID(ctx)

	if err != nil {
		h.noteNotFound(ctx)
		return
	}

	_, err = h.notes.Update(ctx.Request.Context(), noteID, userID, ctx.PostForm("title"), ctx.PostForm("body"))

	if err != nil {
		if errors.Is(err, services.ErrNoteNotFound) {
			h.noteNotFound(ctx)
			return
		}

		message, ok := noteMessage(err)
		if !ok {
			h.internalError(ctx, err, "Failed to update note")
			return
		}

		h.flash(ctx, types.CategoryError, message)
		h.redirect(ctx, fmt.Sprintf("/edit/%d", noteID))
		return
	}

	h.metrics.NotesUpdated.Inc()
	h.redirect(ctx, "/note_list")
}

// ConfirmDelete shows the form that actually deletes the note.
func (h *Handler) ConfirmDelete(ctx *gin.Context) {
	note, ok := h.ownedNote(ctx)

	if !ok {
		return
	}

	h.render(ctx, http.StatusOK, "confirm_delete.html", gin.H{"Note": toNoteView(*note, note.UserID)})
}

// DeleteNote removes an owned note. Ids the user does not own are ignored.
func (h *Handler) DeleteNote(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		h.redirect(ctx, "/login")
		return
	}

	noteID, err := utils.GetNoteID(ctx)

	if err != nil {
		h.redirect(ctx, "/note_list")
		return
	}

	remaining, err := h.notes.Delete(ctx.Request.Context(), noteID, userID)

	if err != nil {
		if errors.Is(err, services.ErrNoteNotFound) {
			h.redirect(ctx, "/note_list")
			return
		}
		h.internalError(ctx, err, "Failed to delete note")
		return
	}

	h.metrics.NotesDeleted.Inc()

	if remaining == 0 {
		h.redirect(ctx, "/")
		return
	}

	h.redirect(ctx, "/note_list")
}

// ownedNote loads the note named in the path for the current user. When it
// returns false the response has already been written.
func (h *Handler) ownedNote(ctx *gin.Context) (*models.Note, bool) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		h.redirect(ctx, "/login")
		return nil, false
	}

	noteID, err := utils.GetNoteID(ctx)

	if err != nil {
		h.noteNotFound(ctx)
		return nil, false
	}

	note, err := h.notes.Get(ctx.Request.Context(), noteID, userID)

	if err != nil {
		if errors.Is(err, services.ErrNoteNotFound) {
			h.noteNotFound(ctx)
			return nil, false
		}
		h.internalError(ctx, err, "Failed to load note")
		return nil, false
	}

	return note, true
}

func (h *Handler) noteNotFound(ctx *gin.Context) {
	h.flash(ctx, types.CategoryError, MsgNoteNotFound)
	h.redirect(ctx, "/note_list")
}
