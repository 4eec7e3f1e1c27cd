package handlers

import (
	"net/http"

	"github.com/Varun5711/inotebook/internal/logger"
	"github.com/Varun5711/inotebook/internal/middleware"
	"github.com/Varun5711/inotebook/internal/models"
	"github.com/Varun5711/inotebook/internal/service"
	"github.com/go-chi/chi/v5"
)

const noteDeletedMessage = "Note has been deleted"

type NotesHandler struct {
	notes *service.NoteService
	log   *logger.Logger
}

func NewNotesHandler(notes *service.NoteService, log *logger.Logger) *NotesHandler {
	return &NotesHandler{
		notes: notes,
		log:   log,
	}
}

func (h *NotesHandler) FetchAll(w http.ResponseWriter, r *http.Request) {
	notes, err := h.notes.List(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}

	respondJSON(w, http.StatusOK, notes)
}

func (h *NotesHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req service.CreateNoteInput
	if !decodeJSON(w, r, &req) {
		return
	}

	note, err := h.notes.Create(r.Context(), middleware.GetUserID(r.Context()), req)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}

	respondJSON(w, http.StatusOK, note)
}

func (h *NotesHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req service.UpdateNoteInput
	if !decodeJSON(w, r, &req) {
		return
	}

	note, err := h.notes.Update(r.Context(), middleware.GetUserID(r.Context()), chi.URLParam(r, "id"), req)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}

	respondJSON(w, http.StatusOK, note)
}

func (h *NotesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	note, err := h.notes.Delete(r.Context(), middleware.GetUserID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}

	respondJSON(w, http.StatusOK, models.DeleteNoteResponse{
		Success: noteDeletedMessage,
		Note:    note,
	})
}
