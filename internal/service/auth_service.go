package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Varun5711/inotebook/internal/auth"
	"github.com/Varun5711/inotebook/internal/logger"
	usermodel "github.com/Varun5711/inotebook/internal/models/user"
	"github.com/Varun5711/inotebook/internal/storage"
	"github.com/Varun5711/inotebook/internal/validation"
)

type RegisterInput struct {
	Name     string `json:"name" validate:"min=3" msg:"Name should be more than 2 characters"`
	Email    string `json:"email" validate:"required,email" msg:"Enter a valid email"`
	Password string `json:"password" validate:"min=5" msg:"Password must be atleast 5 characters" redact:"true"`
}

type LoginInput struct {
	Email    string  `json:"email" validate:"required,email" msg:"Enter a valid email"`
	Password *string `json:"password" validate:"required" msg:"Password cannot be blank" redact:"true"`
}

// ProfileCache holds serialized user profiles keyed by user id.
type ProfileCache interface {
	GetJSON(ctx context.Context, key string, dest interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, value interface{}) error
}

type AuthService struct {
	users      storage.UserStore
	tokens     *auth.JWTManager
	profiles   ProfileCache
	bcryptCost int
	log        *logger.Logger
}

// NewAuthService wires the account operations. profiles may be nil.
func NewAuthService(users storage.UserStore, tokens *auth.JWTManager, profiles ProfileCache, bcryptCost int, log *logger.Logger) *AuthService {
	return &AuthService{
		users:      users,
		tokens:     tokens,
		profiles:   profiles,
		bcryptCost: bcryptCost,
		log:        log,
	}
}

// Register creates an account and returns a session token for it.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (string, error) {
	if err := validate(&in); err != nil {
		return "", err
	}

	_, err := s.users.GetUserByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return "", ErrEmailExists
	case !errors.Is(err, storage.ErrNotFound):
		return "", s.internal(ctx, "lookup user by email", err)
	}

	hash, err := auth.HashPasswordWithCost(in.Password, s.bcryptCost)
	if errors.Is(err, auth.ErrPasswordTooLong) {
		return "", &ValidationError{Fields: []validation.FieldError{{
			Type:     "field",
			Msg:      "Password must be at most 72 bytes",
			Path:     "password",
			Location: "body",
		}}}
	}
	if err != nil {
		return "", s.internal(ctx, "hash password", err)
	}

	user, err := s.users.CreateUser(ctx, &usermodel.CreateUserRequest{Name: in.Name, Email: in.Email}, hash)
	if errors.Is(err, storage.ErrDuplicateEmail) {
		return "", ErrEmailExists
	}
	if err != nil {
		return "", s.internal(ctx, "create user", err)
	}

	s.log.Info("user registered", "user_id", user.ID)

	return s.issueToken(ctx, user.ID)
}

// Login checks credentials. Unknown email and wrong password fail the same way.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (string, error) {
	if err := validate(&in); err != nil {
		return "", err
	}

	user, err := s.users.GetUserByEmail(ctx, in.Email)
	if errors.Is(err, storage.ErrNotFound) {
		auth.BurnPasswordCheck(*in.Password, s.bcryptCost)
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", s.internal(ctx, "lookup user by email", err)
	}

	if err := auth.CheckPassword(user.PasswordHash, *in.Password); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.issueToken(ctx, user.ID)
}

// WhoAmI returns the profile of the authenticated user, without the hash.
func (s *AuthService) WhoAmI(ctx context.Context, userID string) (*usermodel.User, error) {
	if s.profiles != nil {
		var cached usermodel.User
		found, err := s.profiles.GetJSON(ctx, userID, &cached)
		if err != nil {
			s.log.Warn("profile cache read failed", "user_id", userID, "error", err)
		}
		if found {
			return &cached, nil
		}
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, s.internal(ctx, "get user", err)
	}

	user.PasswordHash = ""

	if s.profiles != nil {
		if err := s.profiles.SetJSON(ctx, userID, user); err != nil {
			s.log.Warn("profile cache write failed", "user_id", userID, "error", err)
		}
	}

	return user, nil
}

func (s *AuthService) issueToken(ctx context.Context, userID string) (string, error) {
	token, _, err := s.tokens.GenerateToken(userID)
	if err != nil {
		return "", s.internal(ctx, "sign token", err)
	}
	return token, nil
}

func (s *AuthService) internal(ctx context.Context, op string, err error) error {
	s.log.ErrorContext(ctx, "auth operation failed", "op", op, "error", err)
	return fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
}
