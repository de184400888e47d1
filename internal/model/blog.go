package model

import "time"

// Blog represents a blog record in the database. UserID references the
// owning user and is never reassigned after creation.
type Blog struct {
	ID        string    `db:"id"`
	Title     string    `db:"title"`
	Author    string    `db:"author"`
	URL       string    `db:"url"`
	Likes     int       `db:"likes"`
	UserID    string    `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
}

// BlogRequest represents the payload of a blog create or update.
// An update is a full replacement: omitted fields replace the stored
// values with their zero value and are then re-validated.
type BlogRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
}

// BlogResponse represents a blog in API responses, with the owner
// denormalized at read time.
type BlogResponse struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Author string   `json:"author"`
	URL    string   `json:"url"`
	Likes  int      `json:"likes"`
	User   OwnerRef `json:"user"`
}

// OwnerRef is the owner summary embedded in a blog listing.
type OwnerRef struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}
