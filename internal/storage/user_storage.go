package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Varun5711/inotebook/internal/database"
	usermodel "github.com/Varun5711/inotebook/internal/models/user"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UserStorage is the Postgres-backed UserStore.
type UserStorage struct {
	db *database.DBManager
}

func NewUserStorage(db *database.DBManager) *UserStorage {
	return &UserStorage{db: db}
}

func (s *UserStorage) CreateUser(ctx context.Context, req *usermodel.CreateUserRequest, passwordHash string) (*usermodel.User, error) {
	userID := uuid.New().String()
	now := time.Now().UTC()

	query := `
		INSERT INTO users (id, name, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id::text, name, email, created_at
	`

	var user usermodel.User
	err := s.db.Write().QueryRow(ctx, query,
		userID,
		req.Name,
		req.Email,
		passwordHash,
		now,
	).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.CreatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// GetUserByEmail reads from the primary so a login straight after
// registration never misses the row.
func (s *UserStorage) GetUserByEmail(ctx context.Context, email string) (*usermodel.User, error) {
	query := `
		SELECT id::text, name, email, password_hash, created_at
		FROM users
		WHERE email = $1
	`

	var user usermodel.User
	err := s.db.Write().QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}

// GetUserByID tries a replica first and falls back to the primary when the
// replica has not caught up yet.
func (s *UserStorage) GetUserByID(ctx context.Context, userID string) (*usermodel.User, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, ErrNotFound
	}

	user, err := s.getUserByID(ctx, s.db.Read(), userID)
	if errors.Is(err, ErrNotFound) && s.db.HasReplicas() {
		return s.getUserByID(ctx, s.db.Write(), userID)
	}

	return user, err
}

func (s *UserStorage) getUserByID(ctx context.Context, q querier, userID string) (*usermodel.User, error) {
	query := `
		SELECT id::text, name, email, created_at
		FROM users
		WHERE id = $1
	`

	var user usermodel.User
	err := q.QueryRow(ctx, query, userID).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}
