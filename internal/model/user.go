package model

import "time"

// User represents a user in the database. PasswordHash is never serialized.
// The owned-blog sequence is not stored here: listings join it from the
// blogs table at read time, which keeps user and blog writes independent.
type User struct {
	ID           string    `db:"id"`
	Username     string    `db:"username"`
	Name         string    `db:"name"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// CreateUserRequest represents a user registration request.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Name     string `json:"name"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse represents a successful login with a signed bearer token.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// UserResponse represents user data safe for API responses (no hash).
// Blogs holds the user's blogs in creation order.
type UserResponse struct {
	ID       string    `json:"id"`
	Username string    `json:"username"`
	Name     string    `json:"name"`
	Blogs    []BlogRef `json:"blogs"`
}

// BlogRef is the blog summary embedded in a user listing.
type BlogRef struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
}
