package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/bloglist/bloglist-go/internal/model"
)

var ErrBlogNotFound = errors.New("blog not found")

// BlogRepository handles blog persistence operations.
type BlogRepository struct {
	db *sqlx.DB
}

// NewBlogRepository creates a new BlogRepository.
func NewBlogRepository(db *sqlx.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

// Create inserts a new blog, assigning its id and creation time.
func (r *BlogRepository) Create(ctx context.Context, blog *model.Blog) error {
	blog.ID = uuid.NewString()
	blog.CreatedAt = time.Now().UTC()

	query := `INSERT INTO blogs (id, title, author, url, likes, user_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		blog.ID, blog.Title, blog.Author, blog.URL, blog.Likes, blog.UserID, blog.CreatedAt)
	return err
}

// GetByID retrieves a blog by id.
func (r *BlogRepository) GetByID(ctx context.Context, id string) (*model.Blog, error) {
	blog := &model.Blog{}
	query := `SELECT id, title, author, url, likes, user_id, created_at FROM blogs WHERE id = ?`
	if err := r.db.GetContext(ctx, blog, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}
	return blog, nil
}

// Update replaces the mutable fields of a blog. The owner is immutable.
// Existence is checked by the caller; MySQL reports zero affected rows for
// a no-op update, so rows-affected cannot distinguish missing from unchanged.
func (r *BlogRepository) Update(ctx context.Context, blog *model.Blog) error {
	query := `UPDATE blogs SET title = ?, author = ?, url = ?, likes = ? WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query,
		blog.Title, blog.Author, blog.URL, blog.Likes, blog.ID)
	return err
}

// Delete removes a blog by id.
func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM blogs WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrBlogNotFound
	}
	return nil
}

// List retrieves all blogs in creation order.
func (r *BlogRepository) List(ctx context.Context) ([]model.Blog, error) {
	var blogs []model.Blog
	query := `SELECT id, title, author, url, likes, user_id, created_at FROM blogs ORDER BY created_at ASC`
	if err := r.db.SelectContext(ctx, &blogs, query); err != nil {
		return nil, err
	}
	return blogs, nil
}
