package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloglist/bloglist-go/internal/model"
)

var listWithOneBlog = []model.Blog{
	{
		ID:     "5a422aa71b54a676234d17f8",
		Title:  "Go To Statement Considered Harmful",
		Author: "Edsger W. Dijkstra",
		URL:    "http://www.u.arizona.edu/~rubinson/copyright_violations/Go_To_Considered_Harmful.html",
		Likes:  5,
	},
}

var listWithManyBlogs = []model.Blog{
	{
		ID:     "5a422a851b54a676234d17f7",
		Title:  "React patterns",
		Author: "Michael Chan",
		URL:    "https://reactpatterns.com/",
		Likes:  7,
	},
	{
		ID:     "5a422aa71b54a676234d17f8",
		Title:  "Go To Statement Considered Harmful",
		Author: "Edsger W. Dijkstra",
		URL:    "http://www.u.arizona.edu/~rubinson/copyright_violations/Go_To_Considered_Harmful.html",
		Likes:  5,
	},
	{
		ID:     "5a422b3a1b54a676234d17f9",
		Title:  "Canonical string reduction",
		Author: "Edsger W. Dijkstra",
		URL:    "http://www.cs.utexas.edu/~EWD/transcriptions/EWD08xx/EWD808.html",
		Likes:  12,
	},
	{
		ID:     "5a422b891b54a676234d17fa",
		Title:  "First class tests",
		Author: "Robert C. Martin",
		URL:    "http://blog.cleancoder.com/uncle-bob/2017/05/05/TestDefinitions.html",
		Likes:  10,
	},
	{
		ID:     "5a422ba71b54a676234d17fb",
		Title:  "TDD harms architecture",
		Author: "Robert C. Martin",
		URL:    "http://blog.cleancoder.com/uncle-bob/2017/03/03/TDD-Harms-Architecture.html",
		Likes:  0,
	},
	{
		ID:     "5a422bc61b54a676234d17fc",
		Title:  "Type wars",
		Author: "Robert C. Martin",
		URL:    "http://blog.cleancoder.com/uncle-bob/2016/05/01/TypeWars.html",
		Likes:  2,
	},
}

func TestDummy(t *testing.T) {
	assert.Equal(t, 1, Dummy(nil))
	assert.Equal(t, 1, Dummy(listWithManyBlogs))
}

func TestTotalLikes(t *testing.T) {
	tests := []struct {
		name  string
		blogs []model.Blog
		want  int
	}{
		{name: "empty list sums to zero", blogs: nil, want: 0},
		{name: "single blog equals its likes", blogs: listWithOneBlog, want: 5},
		{name: "many blogs are summed", blogs: listWithManyBlogs, want: 36},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalLikes(tt.blogs))
		})
	}
}

func TestFavoriteBlogEmpty(t *testing.T) {
	assert.Nil(t, FavoriteBlog(nil))
	assert.Nil(t, FavoriteBlog([]model.Blog{}))
}

func TestFavoriteBlogSingle(t *testing.T) {
	fav := FavoriteBlog(listWithOneBlog)
	require.NotNil(t, fav)
	assert.Equal(t, &Favorite{
		Title:  "Go To Statement Considered Harmful",
		Author: "Edsger W. Dijkstra",
		Likes:  5,
	}, fav)
}

func TestFavoriteBlogMany(t *testing.T) {
	fav := FavoriteBlog(listWithManyBlogs)
	require.NotNil(t, fav)
	assert.Equal(t, "Canonical string reduction", fav.Title)
	assert.Equal(t, 12, fav.Likes)
}

func TestFavoriteBlogTieKeepsFirst(t *testing.T) {
	blogs := []model.Blog{
		{Title: "first", Author: "a", Likes: 9},
		{Title: "second", Author: "b", Likes: 9},
		{Title: "third", Author: "c", Likes: 3},
	}

	fav := FavoriteBlog(blogs)
	require.NotNil(t, fav)
	assert.Equal(t, "first", fav.Title)
}

func TestMostBlogsEmpty(t *testing.T) {
	assert.Nil(t, MostBlogs(nil))
}

func TestMostBlogsMany(t *testing.T) {
	top := MostBlogs(listWithManyBlogs)
	require.NotNil(t, top)
	assert.Equal(t, &AuthorBlogs{Author: "Robert C. Martin", Blogs: 3}, top)
}

func TestMostBlogsTieKeepsFirstSeen(t *testing.T) {
	blogs := []model.Blog{
		{Title: "a1", Author: "alice"},
		{Title: "b1", Author: "bob"},
		{Title: "b2", Author: "bob"},
		{Title: "a2", Author: "alice"},
	}

	top := MostBlogs(blogs)
	require.NotNil(t, top)
	assert.Equal(t, "alice", top.Author)
	assert.Equal(t, 2, top.Blogs)
}

func TestMostLikesEmpty(t *testing.T) {
	assert.Nil(t, MostLikes(nil))
}

func TestMostLikesMany(t *testing.T) {
	top := MostLikes(listWithManyBlogs)
	require.NotNil(t, top)
	assert.Equal(t, &AuthorLikes{Author: "Edsger W. Dijkstra", Likes: 17}, top)
}

func TestMostLikesTieKeepsFirstSeen(t *testing.T) {
	blogs := []model.Blog{
		{Title: "a1", Author: "alice", Likes: 4},
		{Title: "b1", Author: "bob", Likes: 4},
	}

	top := MostLikes(blogs)
	require.NotNil(t, top)
	assert.Equal(t, "alice", top.Author)
	assert.Equal(t, 4, top.Likes)
}
