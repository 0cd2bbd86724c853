package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User represents a registered user who owns tasks.
type User struct {
	ID        uuid.UUID `json:"user_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	// Password is the plaintext password, present only between request
	// decoding and hashing in the store.
	Password     string    `json:"-"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"-"`
}

// NewUser creates a new User with a generated ID.
// Surrounding whitespace is trimmed from names and email.
func NewUser(firstName, lastName, email, password string) (*User, error) {
	user := &User{
		ID:        uuid.New(),
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Email:     strings.TrimSpace(email),
		Password:  password,
		CreatedAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks that all required user fields are present.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return NewValidationError("user_id", "is required", ErrInvalidID)
	}
	if u.FirstName == "" {
		return NewValidationError("first_name", "is required", nil)
	}
	if u.LastName == "" {
		return NewValidationError("last_name", "is required", nil)
	}
	if u.Email == "" {
		return NewValidationError("email", "is required", nil)
	}
	// A stored user carries only the hash.
	if u.Password == "" && u.PasswordHash == "" {
		return NewValidationError("password", "is required", nil)
	}
	return nil
}
