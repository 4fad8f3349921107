package entity

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gustavo-ramos/newsfeed-backend/internal/domain"
)

const (
	NameMinLength = 5
	NameMaxLength = 100
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Preferences  []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser normalizes the email to lowercase; preferences may be nil.
func NewUser(name, email, passwordHash string, preferences []string) *User {
	now := time.Now().UTC()
	if preferences == nil {
		preferences = []string{}
	}
	return &User{
		ID:           uuid.New(),
		Name:         name,
		Email:        strings.ToLower(email),
		PasswordHash: passwordHash,
		Preferences:  preferences,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Validate checks field constraints and returns the first offending field's
// declared message.
func (u *User) Validate() error {
	if len(u.Name) < NameMinLength || len(u.Name) > NameMaxLength {
		return domain.NewValidationError("name", "Name should not be less than 5, and more than 100 characters long")
	}
	if !emailPattern.MatchString(u.Email) {
		return domain.NewValidationError("email", "Please provide a valid email address")
	}
	return nil
}

// SetPreferences replaces the stored list wholesale.
func (u *User) SetPreferences(preferences []string) {
	if preferences == nil {
		preferences = []string{}
	}
	u.Preferences = preferences
	u.UpdatedAt = time.Now().UTC()
}
