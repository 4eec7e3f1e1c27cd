package storage

import (
	"context"
	"errors"

	"github.com/Varun5711/inotebook/internal/idgen"
	"github.com/Varun5711/inotebook/internal/models"
	usermodel "github.com/Varun5711/inotebook/internal/models/user"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrUnknownOwner   = errors.New("note owner does not exist")
)

// UserStore persists accounts. Lookups return ErrNotFound when nothing matches.
type UserStore interface {
	CreateUser(ctx context.Context, req *usermodel.CreateUserRequest, passwordHash string) (*usermodel.User, error)
	GetUserByEmail(ctx context.Context, email string) (*usermodel.User, error)
	GetUserByID(ctx context.Context, userID string) (*usermodel.User, error)
}

// NoteStore persists notes. Each method is a single atomic store operation.
type NoteStore interface {
	CreateNote(ctx context.Context, note *models.Note) (*models.Note, error)
	GetNote(ctx context.Context, id idgen.ID) (*models.Note, error)
	ListNotesByUser(ctx context.Context, userID string) ([]*models.Note, error)
	UpdateNote(ctx context.Context, id idgen.ID, patch models.NotePatch) (*models.Note, error)
	DeleteNote(ctx context.Context, id idgen.ID) (*models.Note, error)
}

// Pinger reports backend health.
type Pinger interface {
	Ping(ctx context.Context) error
}
