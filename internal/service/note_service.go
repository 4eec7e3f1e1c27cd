package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Varun5711/inotebook/internal/idgen"
	"github.com/Varun5711/inotebook/internal/logger"
	"github.com/Varun5711/inotebook/internal/models"
	"github.com/Varun5711/inotebook/internal/storage"
)

type CreateNoteInput struct {
	Title       string `json:"title" validate:"min=3" msg:"Title should have more than 3 characters"`
	Description string `json:"description" validate:"min=5" msg:"Description should have more than 5 characters"`
	Tag         string `json:"tag"`
}

// UpdateNoteInput holds the fields to change. Absent or empty fields keep
// their stored value.
type UpdateNoteInput struct {
	Title       *string `json:"title" validate:"omitempty,min=3" msg:"Title should have more than 3 characters"`
	Description *string `json:"description" validate:"omitempty,min=5" msg:"Description should have more than 5 characters"`
	Tag         *string `json:"tag"`
}

// IDGenerator hands out note ids.
type IDGenerator interface {
	Next() (idgen.ID, error)
}

type NoteService struct {
	notes storage.NoteStore
	ids   IDGenerator
	log   *logger.Logger
}

func NewNoteService(notes storage.NoteStore, ids IDGenerator, log *logger.Logger) *NoteService {
	return &NoteService{
		notes: notes,
		ids:   ids,
		log:   log,
	}
}

func (s *NoteService) List(ctx context.Context, userID string) ([]*models.Note, error) {
	notes, err := s.notes.ListNotesByUser(ctx, userID)
	if err != nil {
		return nil, s.internal(ctx, "list notes", err)
	}
	return notes, nil
}

func (s *NoteService) Create(ctx context.Context, userID string, in CreateNoteInput) (*models.Note, error) {
	if err := validate(&in); err != nil {
		return nil, err
	}

	id, err := s.ids.Next()
	if err != nil {
		return nil, s.internal(ctx, "generate note id", err)
	}

	tag := in.Tag
	if tag == "" {
		tag = models.DefaultTag
	}

	note, err := s.notes.CreateNote(ctx, &models.Note{
		ID:          id,
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		Tag:         tag,
	})
	if errors.Is(err, storage.ErrUnknownOwner) {
		return nil, ErrNotAllowed
	}
	if err != nil {
		return nil, s.internal(ctx, "create note", err)
	}

	s.log.Info("note created", "note_id", note.ID.String(), "user_id", userID)
	return note, nil
}

func (s *NoteService) Update(ctx context.Context, userID, noteID string, in UpdateNoteInput) (*models.Note, error) {
	patch := models.NotePatch{
		Title:       nonEmpty(in.Title),
		Description: nonEmpty(in.Description),
		Tag:         nonEmpty(in.Tag),
	}
	in.Title, in.Description, in.Tag = patch.Title, patch.Description, patch.Tag

	note, err := s.ownedNote(ctx, userID, noteID)
	if err != nil {
		return nil, err
	}

	if err := validate(&in); err != nil {
		return nil, err
	}

	if patch.IsEmpty() {
		return note, nil
	}

	updated, err := s.notes.UpdateNote(ctx, note.ID, patch)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNoteNotFound
	}
	if err != nil {
		return nil, s.internal(ctx, "update note", err)
	}

	return updated, nil
}

func (s *NoteService) Delete(ctx context.Context, userID, noteID string) (*models.Note, error) {
	note, err := s.ownedNote(ctx, userID, noteID)
	if err != nil {
		return nil, err
	}

	deleted, err := s.notes.DeleteNote(ctx, note.ID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNoteNotFound
	}
	if err != nil {
		return nil, s.internal(ctx, "delete note", err)
	}

	s.log.Info("note deleted", "note_id", deleted.ID.String(), "user_id", userID)
	return deleted, nil
}

// ownedNote loads the note and checks that userID owns it.
func (s *NoteService) ownedNote(ctx context.Context, userID, noteID string) (*models.Note, error) {
	id, err := idgen.Parse(noteID)
	if err != nil {
		return nil, ErrNoteNotFound
	}

	note, err := s.notes.GetNote(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNoteNotFound
	}
	if err != nil {
		return nil, s.internal(ctx, "get note", err)
	}

	if note.UserID != userID {
		s.log.Warn("note access denied", "note_id", noteID, "user_id", userID)
		return nil, ErrNotAllowed
	}

	return note, nil
}

func (s *NoteService) internal(ctx context.Context, op string, err error) error {
	s.log.ErrorContext(ctx, "note operation failed", "op", op, "error", err)
	return fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
