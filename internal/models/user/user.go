package user

import "time"

// User is a registered account. PasswordHash never leaves the process in
// JSON form.
type User struct {
	ID           string    `json:"_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"date"`
}

type CreateUserRequest struct {
	Name  string
	Email string
}
