package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/Varun5711/inotebook/internal/logger"
	"github.com/Varun5711/inotebook/internal/models"
	"github.com/Varun5711/inotebook/internal/service"
	"github.com/Varun5711/inotebook/internal/validation"
)

const maxBodyBytes = 1 << 20

type validationResponse struct {
	Errors []validation.FieldError `json:"errors"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, models.ErrorResponse{Error: message})
}

// decodeJSON reads the request body into dst. An empty body leaves dst
// untouched so field validation reports what is missing.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		respondError(w, http.StatusRequestEntityTooLarge, "Request body too large")
		return false
	}

	respondError(w, http.StatusBadRequest, "Invalid request body")
	return false
}

// writeServiceError maps service errors onto HTTP responses. Internal
// details stay in the logs.
func writeServiceError(w http.ResponseWriter, log *logger.Logger, err error) {
	var verr *service.ValidationError

	switch {
	case errors.As(err, &verr):
		respondJSON(w, http.StatusBadRequest, validationResponse{Errors: verr.Fields})
	case errors.Is(err, service.ErrEmailExists):
		respondError(w, http.StatusBadRequest, service.ErrEmailExists.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(w, http.StatusBadRequest, service.ErrInvalidCredentials.Error())
	case errors.Is(err, service.ErrNoteNotFound):
		respondError(w, http.StatusNotFound, service.ErrNoteNotFound.Error())
	case errors.Is(err, service.ErrUserNotFound):
		respondError(w, http.StatusNotFound, service.ErrUserNotFound.Error())
	case errors.Is(err, service.ErrNotAllowed):
		respondError(w, http.StatusUnauthorized, service.ErrNotAllowed.Error())
	default:
		if !errors.Is(err, service.ErrInternal) {
			log.Error("unhandled service error", "error", err)
		}
		respondError(w, http.StatusInternalServerError, service.ErrInternal.Error())
	}
}
