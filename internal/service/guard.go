package service

import (
	"errors"

	"github.com/bloglist/bloglist-go/internal/model"
)

var ErrForbidden = errors.New("unauthorized")

// authorizeMutation permits a blog mutation only to the blog's owner.
// A nonexistent blog is reported as not found before this check runs, so
// requesters cannot probe for blogs they do not own.
func authorizeMutation(blog *model.Blog, requester *model.User) error {
	if blog.UserID != requester.ID {
		return ErrForbidden
	}
	return nil
}
