package entity_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gustavo-ramos/newsfeed-backend/internal/domain"
	"github.com/gustavo-ramos/newsfeed-backend/internal/domain/entity"
)

func TestNewUser(t *testing.T) {
	t.Run("lowercases the email", func(t *testing.T) {
		user := entity.NewUser("Alice Doe", "Alice@Example.COM", "hash", nil)
		assert.Equal(t, "alice@example.com", user.Email)
	})

	t.Run("defaults nil preferences to an empty list", func(t *testing.T) {
		user := entity.NewUser("Alice Doe", "alice@example.com", "hash", nil)
		assert.NotNil(t, user.Preferences)
		assert.Empty(t, user.Preferences)
	})

	t.Run("assigns a fresh id and matching timestamps", func(t *testing.T) {
		user := entity.NewUser("Alice Doe", "alice@example.com", "hash", nil)
		assert.NotEqual(t, user.ID.String(), "00000000-0000-0000-0000-000000000000")
		assert.Equal(t, user.CreatedAt, user.UpdatedAt)
	})
}

func TestUser_Validate(t *testing.T) {
	valid := func() *entity.User {
		return entity.NewUser("Alice Doe", "alice@example.com", "hash", nil)
	}

	t.Run("accepts a valid user", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("rejects a short name", func(t *testing.T) {
		user := valid()
		user.Name = "Al"

		err := user.Validate()
		var validationErr *domain.ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "name", validationErr.Field)
	})

	t.Run("rejects a name above 100 characters", func(t *testing.T) {
		user := valid()
		user.Name = strings.Repeat("a", 101)

		err := user.Validate()
		var validationErr *domain.ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "name", validationErr.Field)
	})

	t.Run("rejects a malformed email", func(t *testing.T) {
		for _, email := range []string{"plain", "missing@domain", "spaces in@example.com", "@example.com"} {
			user := valid()
			user.Email = email

			err := user.Validate()
			var validationErr *domain.ValidationError
			assert.ErrorAs(t, err, &validationErr, "email: %s", email)
			assert.Equal(t, "email", validationErr.Field)
		}
	})
}
