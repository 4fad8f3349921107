package news

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gustavo-ramos/newsfeed-backend/internal/adapter/repository"
)

//go:generate mockgen -source=service.go -destination=../../mocks/news_mocks.go -package=mocks

// Provider is the outbound headline-search client.
type Provider interface {
	TopHeadlines(ctx context.Context, country, query string) (json.RawMessage, error)
}

// Cache stores provider payloads; Get returns (nil, nil) on a miss.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

type Service struct {
	userRepo repository.UserRepository
	provider Provider
	cache    Cache
	country  string
	cacheTTL time.Duration
}

func NewService(userRepo repository.UserRepository, provider Provider, cache Cache, country string, cacheTTL time.Duration) *Service {
	return &Service{
		userRepo: userRepo,
		provider: provider,
		cache:    cache,
		country:  country,
		cacheTTL: cacheTTL,
	}
}

// Fetch joins the user's preferences into a single comma-separated query
// term and returns the provider's payload, served from cache when a fresh
// copy exists. Cache failures are ignored; they never change the outcome.
func (s *Service) Fetch(ctx context.Context, userID uuid.UUID) (json.RawMessage, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	query := strings.Join(user.Preferences, ",")
	key := fmt.Sprintf("news:%s:%s", s.country, query)

	if cached, err := s.cache.Get(ctx, key); err == nil && cached != nil {
		return json.RawMessage(cached), nil
	}

	payload, err := s.provider.TopHeadlines(ctx, s.country, query)
	if err != nil {
		return nil, err
	}

	_ = s.cache.Set(ctx, key, payload, s.cacheTTL)

	return payload, nil
}
