package auth

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordTooLong is returned for passwords bcrypt cannot hash (over 72 bytes).
var ErrPasswordTooLong = errors.New("password exceeds 72 bytes")

// dummyHashes holds one lazily built hash per cost. Unknown-email logins
// compare against the hash matching the configured cost so the response
// time does not reveal whether the email exists.
var dummyHashes sync.Map

func dummyHash(cost int) []byte {
	cost = normalizeCost(cost)

	build, _ := dummyHashes.LoadOrStore(cost, sync.OnceValue(func() []byte {
		hash, _ := bcrypt.GenerateFromPassword([]byte("inotebook-dummy-password"), cost)
		return hash
	}))
	return build.(func() []byte)()
}

func normalizeCost(cost int) int {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return bcrypt.DefaultCost
	}
	return cost
}

// HashPasswordWithCost salts and hashes password. Costs outside bcrypt's
// accepted range fall back to bcrypt.DefaultCost.
func HashPasswordWithCost(password string, cost int) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), normalizeCost(cost))
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrPasswordTooLong
		}
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

func CheckPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// BurnPasswordCheck spends the time of a real comparison at cost and always fails.
func BurnPasswordCheck(password string, cost int) {
	_ = bcrypt.CompareHashAndPassword(dummyHash(cost), []byte(password))
}
