// Package stats computes aggregate statistics over blog collections.
// All functions are pure and treat an empty collection as an explicit
// no-result outcome rather than a failure.
package stats

import "github.com/bloglist/bloglist-go/internal/model"

// Favorite is the summary of the most-liked blog.
type Favorite struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

// AuthorBlogs is the author with the highest number of blogs.
type AuthorBlogs struct {
	Author string `json:"author"`
	Blogs  int    `json:"blogs"`
}

// AuthorLikes is the author with the highest total of likes.
type AuthorLikes struct {
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

// Dummy always returns 1 regardless of input.
func Dummy(blogs []model.Blog) int {
	return 1
}

// TotalLikes sums the likes of all blogs. An empty collection sums to 0.
func TotalLikes(blogs []model.Blog) int {
	total := 0
	for _, b := range blogs {
		total += b.Likes
	}
	return total
}

// FavoriteBlog returns the blog with the most likes, or nil for an empty
// collection. Ties resolve to the first maximal blog in input order.
func FavoriteBlog(blogs []model.Blog) *Favorite {
	if len(blogs) == 0 {
		return nil
	}

	best := blogs[0]
	for _, b := range blogs[1:] {
		if b.Likes > best.Likes {
			best = b
		}
	}

	return &Favorite{Title: best.Title, Author: best.Author, Likes: best.Likes}
}

// MostBlogs returns the author with the most blogs, or nil for an empty
// collection. Ties resolve to the author seen first in input order.
func MostBlogs(blogs []model.Blog) *AuthorBlogs {
	if len(blogs) == 0 {
		return nil
	}

	counts := make(map[string]int)
	var order []string
	for _, b := range blogs {
		if _, seen := counts[b.Author]; !seen {
			order = append(order, b.Author)
		}
		counts[b.Author]++
	}

	top := &AuthorBlogs{}
	for _, author := range order {
		if counts[author] > top.Blogs {
			top.Author = author
			top.Blogs = counts[author]
		}
	}
	return top
}

// MostLikes returns the author with the highest total of likes, or nil for
// an empty collection. Ties resolve to the author seen first in input order.
func MostLikes(blogs []model.Blog) *AuthorLikes {
	if len(blogs) == 0 {
		return nil
	}

	likes := make(map[string]int)
	var order []string
	for _, b := range blogs {
		if _, seen := likes[b.Author]; !seen {
			order = append(order, b.Author)
		}
		likes[b.Author] += b.Likes
	}

	top := &AuthorLikes{}
	for _, author := range order {
		if likes[author] > top.Likes {
			top.Author = author
			top.Likes = likes[author]
		}
	}
	return top
}
