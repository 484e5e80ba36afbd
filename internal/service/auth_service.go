package service

import (
	"context"
	"fmt"

	"todolist-be/internal/apperrors"
	"todolist-be/internal/entities"
	"todolist-be/internal/models"
	"todolist-be/internal/password"
	"todolist-be/internal/repository"
)

// TokenIssuer is the part of the JWT service the auth flow needs
type TokenIssuer interface {
	GenerateToken(subject string) (string, error)
}

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.UserResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.TokenResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
	hasher   password.Hasher
	tokens   TokenIssuer
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, hasher password.Hasher, tokens TokenIssuer) AuthService {
	return &authService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

// Register creates a new user account. Email is checked before username and
// both before the password is hashed, so a request colliding on both reports
// ErrDuplicateEmail. The reads are not atomic with the insert: concurrent
// registrations can both pass.
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*models.UserResponse, error) {
	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrDuplicateEmail
	}

	existing, err = s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrDuplicateUsername
	}

	hashedPassword, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.Create(ctx, req.Email, req.Username, hashedPassword)
	if err != nil {
		return nil, err
	}

	return ToUserResponse(user), nil
}

// Login checks the credentials and issues an access token for the user's email
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.TokenResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !s.hasher.Verify(req.Password, user.HashedPassword) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.TokenResponse{
		AccessToken: token,
		TokenType:   models.TokenTypeBearer,
	}, nil
}

// ToUserResponse converts a stored user to its public shape
func ToUserResponse(user *entities.User) *models.UserResponse {
	return &models.UserResponse{
		ID:        user.ID.Hex(),
		Email:     user.Email,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
