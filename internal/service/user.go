package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/bloglist/bloglist-go/internal/crypto"
	"github.com/bloglist/bloglist-go/internal/model"
	"github.com/bloglist/bloglist-go/internal/repository"
)

var (
	ErrContentMissing   = errors.New("content missing")
	ErrUsernameTooShort = errors.New("username must have at least 3 characters")
	ErrPasswordTooShort = errors.New("password must have at least 3 characters")
	ErrUsernameTaken    = errors.New("expected `username` to be unique")
)

// UserService handles registration and user listings.
type UserService struct {
	users    *repository.UserRepository
	blogs    *repository.BlogRepository
	validate *validator.Validate
}

// NewUserService creates a new UserService.
func NewUserService(users *repository.UserRepository, blogs *repository.BlogRepository, validate *validator.Validate) *UserService {
	return &UserService{
		users:    users,
		blogs:    blogs,
		validate: validate,
	}
}

// Register creates a new user account. The password is hashed once at
// registration and the hash is immutable afterwards.
func (s *UserService) Register(ctx context.Context, req model.CreateUserRequest) (model.UserResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return model.UserResponse{}, translateUserValidation(err)
	}
	if len(req.Password) < 3 {
		return model.UserResponse{}, ErrPasswordTooShort
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.UserResponse{}, err
	}

	user := &model.User{
		Username:     req.Username,
		Name:         req.Name,
		PasswordHash: hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return model.UserResponse{}, ErrUsernameTaken
		}
		return model.UserResponse{}, err
	}

	return model.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
		Blogs:    []model.BlogRef{},
	}, nil
}

// List returns all users with their owned blogs joined in at read time.
func (s *UserService) List(ctx context.Context) ([]model.UserResponse, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	blogs, err := s.blogs.List(ctx)
	if err != nil {
		return nil, err
	}

	return joinUserBlogs(users, blogs), nil
}

// joinUserBlogs denormalizes each user's owned blogs into the listing.
// Blogs arrive in creation order, so per-user order is preserved.
func joinUserBlogs(users []model.User, blogs []model.Blog) []model.UserResponse {
	byOwner := make(map[string][]model.BlogRef, len(users))
	for _, b := range blogs {
		byOwner[b.UserID] = append(byOwner[b.UserID], model.BlogRef{
			ID:     b.ID,
			Title:  b.Title,
			Author: b.Author,
			URL:    b.URL,
		})
	}

	result := make([]model.UserResponse, len(users))
	for i, u := range users {
		refs := byOwner[u.ID]
		if refs == nil {
			refs = []model.BlogRef{}
		}
		result[i] = model.UserResponse{
			ID:       u.ID,
			Username: u.Username,
			Name:     u.Name,
			Blogs:    refs,
		}
	}
	return result
}

// translateUserValidation maps validator failures on the registration
// payload to the service's sentinel errors.
func translateUserValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	for _, fe := range verrs {
		switch {
		case fe.Tag() == "required":
			return ErrContentMissing
		case fe.Field() == "Username" && fe.Tag() == "min":
			return ErrUsernameTooShort
		}
	}
	return ErrContentMissing
}
