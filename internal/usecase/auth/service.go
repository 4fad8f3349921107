package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/gustavo-ramos/newsfeed-backend/internal/adapter/repository"
	"github.com/gustavo-ramos/newsfeed-backend/internal/domain"
	"github.com/gustavo-ramos/newsfeed-backend/internal/domain/entity"
	"github.com/gustavo-ramos/newsfeed-backend/internal/infrastructure/auth"
)

type Service struct {
	userRepo       repository.UserRepository
	jwtSvc         *auth.JWTService
	passwordHasher *auth.PasswordHasher
}

func NewService(userRepo repository.UserRepository, jwtSvc *auth.JWTService, passwordHasher *auth.PasswordHasher) *Service {
	return &Service{
		userRepo:       userRepo,
		jwtSvc:         jwtSvc,
		passwordHasher: passwordHasher,
	}
}

type SignupInput struct {
	Name        string
	Email       string
	Password    string
	Preferences []string
}

// Signup validates, hashes and stores a new account. It deliberately does
// not issue a token; callers log in as a second step.
func (s *Service) Signup(ctx context.Context, input SignupInput) (*entity.User, error) {
	user := entity.NewUser(input.Name, input.Email, "", input.Preferences)
	if err := user.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, user.Email)
	if err != nil {
		return nil, fmt.Errorf("checking email: %w", err)
	}
	if exists {
		return nil, domain.ErrUserAlreadyExists
	}

	hash, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}
	user.PasswordHash = hash

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	User  *entity.User
	Token string
}

// Login collapses unknown-email and wrong-password into one failure so
// callers cannot enumerate accounts.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(input.Email))
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if err := s.passwordHasher.Compare(user.PasswordHash, input.Password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, _, err := s.jwtSvc.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generating access token: %w", err)
	}

	return &LoginResult{User: user, Token: token}, nil
}
