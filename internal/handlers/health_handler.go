package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/Varun5711/inotebook/internal/storage"
)

type HealthHandler struct {
	store   storage.Pinger
	backend string
}

func NewHealthHandler(store storage.Pinger, backend string) *HealthHandler {
	return &HealthHandler{
		store:   store,
		backend: backend,
	}
}

type healthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		respondJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable", Store: h.backend})
		return
	}

	respondJSON(w, http.StatusOK, healthResponse{Status: "ok", Store: h.backend})
}
