package storage

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Varun5711/inotebook/internal/idgen"
	"github.com/Varun5711/inotebook/internal/models"
	usermodel "github.com/Varun5711/inotebook/internal/models/user"
	"github.com/google/uuid"
)

// MemoryStorage keeps users and notes in process memory. It implements both
// UserStore and NoteStore and hands out copies so callers cannot mutate
// stored records.
type MemoryStorage struct {
	mu        sync.RWMutex
	users     map[string]*usermodel.User
	emails    map[string]string
	notes     map[idgen.ID]*models.Note
	noteOrder []idgen.ID
	clock     func() time.Time
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		users:  make(map[string]*usermodel.User),
		emails: make(map[string]string),
		notes:  make(map[idgen.ID]*models.Note),
		clock:  time.Now,
	}
}

func (s *MemoryStorage) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *MemoryStorage) CreateUser(ctx context.Context, req *usermodel.CreateUserRequest, passwordHash string) (*usermodel.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.emails[req.Email]; exists {
		return nil, ErrDuplicateEmail
	}

	u := &usermodel.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		CreatedAt:    s.clock().UTC(),
	}

	s.users[u.ID] = u
	s.emails[u.Email] = u.ID

	out := *u
	return &out, nil
}

func (s *MemoryStorage) GetUserByEmail(ctx context.Context, email string) (*usermodel.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, exists := s.emails[email]
	if !exists {
		return nil, ErrNotFound
	}

	out := *s.users[id]
	return &out, nil
}

func (s *MemoryStorage) GetUserByID(ctx context.Context, userID string) (*usermodel.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, exists := s.users[userID]
	if !exists {
		return nil, ErrNotFound
	}

	out := *u
	return &out, nil
}

func (s *MemoryStorage) CreateNote(ctx context.Context, note *models.Note) (*models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[note.UserID]; !exists {
		return nil, ErrUnknownOwner
	}

	if _, exists := s.notes[note.ID]; exists {
		return nil, fmt.Errorf("note %s already exists", note.ID)
	}

	stored := *note
	stored.CreatedAt = s.clock().UTC()

	s.notes[stored.ID] = &stored
	s.noteOrder = append(s.noteOrder, stored.ID)

	out := stored
	return &out, nil
}

func (s *MemoryStorage) GetNote(ctx context.Context, id idgen.ID) (*models.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, exists := s.notes[id]
	if !exists {
		return nil, ErrNotFound
	}

	out := *n
	return &out, nil
}

func (s *MemoryStorage) ListNotesByUser(ctx context.Context, userID string) ([]*models.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	notes := make([]*models.Note, 0)
	for _, id := range s.noteOrder {
		n := s.notes[id]
		if n.UserID != userID {
			continue
		}
		out := *n
		notes = append(notes, &out)
	}

	return notes, nil
}

func (s *MemoryStorage) UpdateNote(ctx context.Context, id idgen.ID, patch models.NotePatch) (*models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, exists := s.notes[id]
	if !exists {
		return nil, ErrNotFound
	}

	patch.Apply(n)

	out := *n
	return &out, nil
}

func (s *MemoryStorage) DeleteNote(ctx context.Context, id idgen.ID) (*models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, exists := s.notes[id]
	if !exists {
		return nil, ErrNotFound
	}

	delete(s.notes, id)
	for i, existing := range s.noteOrder {
		if existing == id {
			s.noteOrder = append(s.noteOrder[:i], s.noteOrder[i+1:]...)
			break
		}
	}

	return n, nil
}
