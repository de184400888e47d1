package service

import (
	"context"
	"errors"

	"github.com/bloglist/bloglist-go/internal/model"
	"github.com/bloglist/bloglist-go/internal/repository"
	"github.com/bloglist/bloglist-go/internal/stats"
)

var (
	ErrBlogNotFound  = errors.New("blog not found")
	ErrNegativeLikes = errors.New("likes must be non-negative")
)

// BlogService orchestrates blog mutations: payload validation, ownership
// checks and persistence.
type BlogService struct {
	blogs *repository.BlogRepository
	users *repository.UserRepository
}

// NewBlogService creates a new BlogService.
func NewBlogService(blogs *repository.BlogRepository, users *repository.UserRepository) *BlogService {
	return &BlogService{
		blogs: blogs,
		users: users,
	}
}

// Create persists a new blog owned by the requester. Likes default to 0
// when omitted.
func (s *BlogService) Create(ctx context.Context, requester *model.User, req model.BlogRequest) (model.BlogResponse, error) {
	if err := validateBlogPayload(req); err != nil {
		return model.BlogResponse{}, err
	}

	blog := &model.Blog{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  req.Likes,
		UserID: requester.ID,
	}

	if err := s.blogs.Create(ctx, blog); err != nil {
		return model.BlogResponse{}, err
	}

	return toBlogResponse(*blog, requester), nil
}

// Update replaces the title, author, url and likes of a blog. Only the
// owner may update, and the replacement is validated like a new blog.
func (s *BlogService) Update(ctx context.Context, requester *model.User, id string, req model.BlogRequest) (model.BlogResponse, error) {
	if err := validateBlogPayload(req); err != nil {
		return model.BlogResponse{}, err
	}

	blog, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return model.BlogResponse{}, ErrBlogNotFound
		}
		return model.BlogResponse{}, err
	}

	if err := authorizeMutation(blog, requester); err != nil {
		return model.BlogResponse{}, err
	}

	blog.Title = req.Title
	blog.Author = req.Author
	blog.URL = req.URL
	blog.Likes = req.Likes

	if err := s.blogs.Update(ctx, blog); err != nil {
		return model.BlogResponse{}, err
	}

	return toBlogResponse(*blog, requester), nil
}

// Delete removes a blog. Only the owner may delete.
func (s *BlogService) Delete(ctx context.Context, requester *model.User, id string) error {
	blog, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return ErrBlogNotFound
		}
		return err
	}

	if err := authorizeMutation(blog, requester); err != nil {
		return err
	}

	err = s.blogs.Delete(ctx, id)
	if errors.Is(err, repository.ErrBlogNotFound) {
		return ErrBlogNotFound
	}
	return err
}

// List returns all blogs with their owners joined in at read time.
func (s *BlogService) List(ctx context.Context) ([]model.BlogResponse, error) {
	blogs, err := s.blogs.List(ctx)
	if err != nil {
		return nil, err
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	return joinBlogOwners(blogs, users), nil
}

// BlogStats is the aggregate summary of the whole blog collection.
type BlogStats struct {
	Count      int                `json:"count"`
	TotalLikes int                `json:"totalLikes"`
	Favorite   *stats.Favorite    `json:"favorite"`
	MostBlogs  *stats.AuthorBlogs `json:"mostBlogs"`
	MostLikes  *stats.AuthorLikes `json:"mostLikes"`
}

// Stats computes the aggregate summary over all blogs.
func (s *BlogService) Stats(ctx context.Context) (BlogStats, error) {
	blogs, err := s.blogs.List(ctx)
	if err != nil {
		return BlogStats{}, err
	}

	return BlogStats{
		Count:      len(blogs),
		TotalLikes: stats.TotalLikes(blogs),
		Favorite:   stats.FavoriteBlog(blogs),
		MostBlogs:  stats.MostBlogs(blogs),
		MostLikes:  stats.MostLikes(blogs),
	}, nil
}

// validateBlogPayload enforces the blog entity constraints on a create or
// replacement payload. A missing field and an empty string fail alike.
func validateBlogPayload(req model.BlogRequest) error {
	if req.Title == "" || req.URL == "" {
		return ErrContentMissing
	}
	if req.Likes < 0 {
		return ErrNegativeLikes
	}
	return nil
}

// joinBlogOwners denormalizes each blog's owner into the listing.
func joinBlogOwners(blogs []model.Blog, users []model.User) []model.BlogResponse {
	owners := make(map[string]*model.User, len(users))
	for i := range users {
		owners[users[i].ID] = &users[i]
	}

	result := make([]model.BlogResponse, len(blogs))
	for i, b := range blogs {
		result[i] = toBlogResponse(b, owners[b.UserID])
	}
	return result
}

func toBlogResponse(b model.Blog, owner *model.User) model.BlogResponse {
	resp := model.BlogResponse{
		ID:     b.ID,
		Title:  b.Title,
		Author: b.Author,
		URL:    b.URL,
		Likes:  b.Likes,
	}
	if owner != nil {
		resp.User = model.OwnerRef{
			ID:       owner.ID,
			Username: owner.Username,
			Name:     owner.Name,
		}
	}
	return resp
}
