package storage

import (
	"context"
	"sync"
	"testing"

	"github.com/Varun5711/inotebook/internal/idgen"
	"github.com/Varun5711/inotebook/internal/models"
	usermodel "github.com/Varun5711/inotebook/internal/models/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func mustCreateUser(t *testing.T, s *MemoryStorage, email string) *usermodel.User {
	t.Helper()
	u, err := s.CreateUser(context.Background(), &usermodel.CreateUserRequest{Name: "Alice", Email: email}, "hash")
	require.NoError(t, err)
	return u
}

func TestMemory_CreateAndGetUser(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	u := mustCreateUser(t, s, "a@example.com")
	assert.NotEmpty(t, u.ID)
	assert.False(t, u.CreatedAt.IsZero())

	byEmail, err := s.GetUserByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)
	assert.Equal(t, "hash", byEmail.PasswordHash)

	byID, err := s.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", byID.Email)

	_, err = s.GetUserByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.GetUserByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_DuplicateEmail(t *testing.T) {
	s := NewMemoryStorage()
	mustCreateUser(t, s, "dup@example.com")

	_, err := s.CreateUser(context.Background(), &usermodel.CreateUserRequest{Name: "Bob", Email: "dup@example.com"}, "x")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestMemory_ConcurrentRegisterSingleWinner(t *testing.T) {
	s := NewMemoryStorage()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
	)

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.CreateUser(context.Background(), &usermodel.CreateUserRequest{Name: "Race", Email: "race@example.com"}, "h")
			if err == nil {
				mu.Lock()
				success++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, success)
}

func TestMemory_NoteLifecycle(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()
	owner := mustCreateUser(t, s, "owner@example.com")
	other := mustCreateUser(t, s, "other@example.com")

	for i, title := range []string{"first", "second", "third"} {
		_, err := s.CreateNote(ctx, &models.Note{ID: idgen.ID(i + 1), UserID: owner.ID, Title: title, Description: "desc!", Tag: "t"})
		require.NoError(t, err)
	}
	_, err := s.CreateNote(ctx, &models.Note{ID: 99, UserID: other.ID, Title: "theirs", Description: "desc!"})
	require.NoError(t, err)

	notes, err := s.ListNotesByUser(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, notes, 3)
	assert.Equal(t, "first", notes[0].Title)
	assert.Equal(t, "third", notes[2].Title)

	updated, err := s.UpdateNote(ctx, 2, models.NotePatch{Title: strPtr("renamed")})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Title)
	assert.Equal(t, "desc!", updated.Description)

	deleted, err := s.DeleteNote(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "renamed", deleted.Title)

	_, err = s.GetNote(ctx, 2)
	assert.ErrorIs(t, err, ErrNotFound)

	notes, err = s.ListNotesByUser(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "third", notes[1].Title)
}

func TestMemory_NoteUnknownOwner(t *testing.T) {
	s := NewMemoryStorage()

	_, err := s.CreateNote(context.Background(), &models.Note{ID: 1, UserID: "ghost", Title: "abc", Description: "abcde"})
	assert.ErrorIs(t, err, ErrUnknownOwner)
}

func TestMemory_MissingNote(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	_, err := s.UpdateNote(ctx, 7, models.NotePatch{Title: strPtr("x")})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.DeleteNote(ctx, 7)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_ReturnsCopies(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()
	owner := mustCreateUser(t, s, "copy@example.com")

	created, err := s.CreateNote(ctx, &models.Note{ID: 1, UserID: owner.ID, Title: "orig", Description: "abcde"})
	require.NoError(t, err)
	created.Title = "mutated"

	got, err := s.GetNote(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "orig", got.Title)
}

func TestMemory_ListEmptyIsNotNil(t *testing.T) {
	notes, err := NewMemoryStorage().ListNotesByUser(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)
}
