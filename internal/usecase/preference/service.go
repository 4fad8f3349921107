package preference

import (
	"context"

	"github.com/google/uuid"

	"github.com/gustavo-ramos/newsfeed-backend/internal/adapter/repository"
)

type Service struct {
	userRepo repository.UserRepository
}

func NewService(userRepo repository.UserRepository) *Service {
	return &Service{userRepo: userRepo}
}

func (s *Service) Get(ctx context.Context, userID uuid.UUID) ([]string, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Preferences, nil
}

// Update replaces the stored list wholesale; there is no merge.
func (s *Service) Update(ctx context.Context, userID uuid.UUID, preferences []string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	user.SetPreferences(preferences)

	return s.userRepo.Update(ctx, user)
}
