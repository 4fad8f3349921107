package handler

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/gustavo-ramos/newsfeed-backend/internal/domain/entity"
	"github.com/gustavo-ramos/newsfeed-backend/internal/usecase/auth"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/handler_mocks.go -package=mocks

type AuthService interface {
	Signup(ctx context.Context, input auth.SignupInput) (*entity.User, error)
	Login(ctx context.Context, input auth.LoginInput) (*auth.LoginResult, error)
}

type PreferenceService interface {
	Get(ctx context.Context, userID uuid.UUID) ([]string, error)
	Update(ctx context.Context, userID uuid.UUID, preferences []string) error
}

type NewsService interface {
	Fetch(ctx context.Context, userID uuid.UUID) (json.RawMessage, error)
}
