package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Varun5711/inotebook/internal/database"
	"github.com/Varun5711/inotebook/internal/idgen"
	"github.com/Varun5711/inotebook/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// NoteStorage is the Postgres-backed NoteStore. Every call hits the primary;
// ownership checks must see the latest write.
type NoteStorage struct {
	db *database.DBManager
}

func NewNoteStorage(db *database.DBManager) *NoteStorage {
	return &NoteStorage{db: db}
}

const noteColumns = `id, user_id::text, title, description, tag, created_at`

func scanNote(row pgx.Row) (*models.Note, error) {
	var (
		n  models.Note
		id int64
	)

	if err := row.Scan(&id, &n.UserID, &n.Title, &n.Description, &n.Tag, &n.CreatedAt); err != nil {
		return nil, err
	}

	n.ID = idgen.ID(id)
	return &n, nil
}

func (s *NoteStorage) CreateNote(ctx context.Context, note *models.Note) (*models.Note, error) {
	if _, err := uuid.Parse(note.UserID); err != nil {
		return nil, ErrUnknownOwner
	}

	query := `
		INSERT INTO notes (id, user_id, title, description, tag, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + noteColumns

	created, err := scanNote(s.db.Write().QueryRow(ctx, query,
		note.ID.Int64(),
		note.UserID,
		note.Title,
		note.Description,
		note.Tag,
		time.Now().UTC(),
	))

	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, ErrUnknownOwner
		}
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	return created, nil
}

func (s *NoteStorage) GetNote(ctx context.Context, id idgen.ID) (*models.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE id = $1`

	note, err := scanNote(s.db.Write().QueryRow(ctx, query, id.Int64()))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return note, nil
}

func (s *NoteStorage) ListNotesByUser(ctx context.Context, userID string) ([]*models.Note, error) {
	notes := make([]*models.Note, 0)
	if _, err := uuid.Parse(userID); err != nil {
		return notes, nil
	}

	query := `SELECT ` + noteColumns + ` FROM notes WHERE user_id = $1 ORDER BY id`

	rows, err := s.db.Write().Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	return notes, nil
}

func (s *NoteStorage) UpdateNote(ctx context.Context, id idgen.ID, patch models.NotePatch) (*models.Note, error) {
	query := `
		UPDATE notes
		SET title = COALESCE($2, title),
		    description = COALESCE($3, description),
		    tag = COALESCE($4, tag)
		WHERE id = $1
		RETURNING ` + noteColumns

	note, err := scanNote(s.db.Write().QueryRow(ctx, query,
		id.Int64(),
		patch.Title,
		patch.Description,
		patch.Tag,
	))

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	return note, nil
}

func (s *NoteStorage) DeleteNote(ctx context.Context, id idgen.ID) (*models.Note, error) {
	query := `DELETE FROM notes WHERE id = $1 RETURNING ` + noteColumns

	note, err := scanNote(s.db.Write().QueryRow(ctx, query, id.Int64()))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to delete note: %w", err)
	}

	return note, nil
}
