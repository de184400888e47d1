package service

import (
	"context"
	"errors"
	"time"

	"github.com/bloglist/bloglist-go/internal/crypto"
	"github.com/bloglist/bloglist-go/internal/model"
	"github.com/bloglist/bloglist-go/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthenticated    = errors.New("token missing or invalid")
)

// AuthService handles credential verification and bearer tokens.
type AuthService struct {
	users     *repository.UserRepository
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(users *repository.UserRepository, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Login verifies a username/password pair and returns a signed token.
// An unknown username and a wrong password fail identically so usernames
// cannot be enumerated.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.LoginResponse{}, ErrInvalidCredentials
		}
		return model.LoginResponse{}, err
	}

	if !crypto.VerifyPassword(req.Password, user.PasswordHash) {
		return model.LoginResponse{}, ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken(user.ID, user.Username, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.LoginResponse{}, err
	}

	return model.LoginResponse{
		Token:    token,
		Username: user.Username,
		Name:     user.Name,
	}, nil
}

// Resolve verifies a bearer token and fetches the bound user's current
// record. A malformed or expired token, or a user that no longer exists,
// all yield ErrUnauthenticated.
func (s *AuthService) Resolve(ctx context.Context, tokenString string) (*model.User, error) {
	claims, err := crypto.ValidateToken(tokenString, s.jwtSecret)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}

	return user, nil
}
