package service

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/bloglist/bloglist-go/internal/model"
	"github.com/bloglist/bloglist-go/internal/repository"
)

const testSecret = "test-secret"

type testEnv struct {
	auth  *AuthService
	users *UserService
	blogs *BlogService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := repository.NewDB("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	userRepo := repository.NewUserRepository(db)
	blogRepo := repository.NewBlogRepository(db)
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &testEnv{
		auth:  NewAuthService(userRepo, testSecret, time.Hour),
		users: NewUserService(userRepo, blogRepo, validate),
		blogs: NewBlogService(blogRepo, userRepo),
	}
}

// registerTestUser registers a user and returns its resolved record.
func registerTestUser(t *testing.T, env *testEnv, username, password string) *model.User {
	t.Helper()

	_, err := env.users.Register(context.Background(), model.CreateUserRequest{
		Username: username,
		Name:     "Test User",
		Password: password,
	})
	require.NoError(t, err)

	login, err := env.auth.Login(context.Background(), model.LoginRequest{
		Username: username,
		Password: password,
	})
	require.NoError(t, err)

	user, err := env.auth.Resolve(context.Background(), login.Token)
	require.NoError(t, err)
	return user
}
