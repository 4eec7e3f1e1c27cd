package models

import (
	"time"

	"github.com/Varun5711/inotebook/internal/idgen"
)

// DefaultTag is applied when a note is created without a tag.
const DefaultTag = "General"

type Note struct {
	ID          idgen.ID  `json:"_id"`
	UserID      string    `json:"user"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tag         string    `json:"tag"`
	CreatedAt   time.Time `json:"date"`
}

// NotePatch carries the fields of a partial update; nil means unchanged.
type NotePatch struct {
	Title       *string
	Description *string
	Tag         *string
}

func (p NotePatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Tag == nil
}

// Apply merges the patch into n in place.
func (p NotePatch) Apply(n *Note) {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Description != nil {
		n.Description = *p.Description
	}
	if p.Tag != nil {
		n.Tag = *p.Tag
	}
}

type DeleteNoteResponse struct {
	Success string `json:"Success"`
	Note    *Note  `json:"note"`
}

type AuthTokenResponse struct {
	AuthToken string `json:"authToken"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
