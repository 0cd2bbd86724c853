package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	user, err := NewUser("  Ada ", "Lovelace", " ada@example.com ", "secret")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "Ada", user.FirstName)
	assert.Equal(t, "Lovelace", user.LastName)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, "secret", user.Password)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestNewUser_MissingFields(t *testing.T) {
	tests := []struct {
		name      string
		firstName string
		lastName  string
		email     string
		password  string
		field     string
	}{
		{"missing first name", "", "Lovelace", "ada@example.com", "secret", "first_name"},
		{"blank first name", "   ", "Lovelace", "ada@example.com", "secret", "first_name"},
		{"missing last name", "Ada", "", "ada@example.com", "secret", "last_name"},
		{"missing email", "Ada", "Lovelace", "", "secret", "email"},
		{"missing password", "Ada", "Lovelace", "ada@example.com", "", "password"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewUser(tc.firstName, tc.lastName, tc.email, tc.password)
			require.Error(t, err)
			assert.True(t, IsValidationError(err))

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tc.field, vErr.Field)
		})
	}
}

func TestUserValidate_StoredUserNeedsOnlyHash(t *testing.T) {
	u := User{
		ID:           uuid.New(),
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "ada@example.com",
		PasswordHash: "$2a$10$hash",
	}
	assert.NoError(t, u.Validate())

	u.ID = uuid.Nil
	err := u.Validate()
	assert.ErrorIs(t, err, ErrInvalidID)
	assert.ErrorIs(t, err, ErrValidation)
}
