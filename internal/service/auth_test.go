package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloglist/bloglist-go/internal/crypto"
	"github.com/bloglist/bloglist-go/internal/model"
)

func TestLoginSuccess(t *testing.T) {
	env := newTestEnv(t)
	registerTestUser(t, env, "root", "sekret")

	resp, err := env.auth.Login(context.Background(), model.LoginRequest{
		Username: "root",
		Password: "sekret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "root", resp.Username)
	assert.Equal(t, "Test User", resp.Name)
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	registerTestUser(t, env, "root", "sekret")

	_, err := env.auth.Login(context.Background(), model.LoginRequest{
		Username: "root",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUserSameError(t *testing.T) {
	env := newTestEnv(t)
	registerTestUser(t, env, "root", "sekret")

	_, wrongPassword := env.auth.Login(context.Background(), model.LoginRequest{
		Username: "root",
		Password: "wrong",
	})
	_, unknownUser := env.auth.Login(context.Background(), model.LoginRequest{
		Username: "nobody",
		Password: "sekret",
	})

	// Both failures must be indistinguishable to block username enumeration.
	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
}

func TestResolveReturnsCurrentUser(t *testing.T) {
	env := newTestEnv(t)
	user := registerTestUser(t, env, "root", "sekret")

	login, err := env.auth.Login(context.Background(), model.LoginRequest{
		Username: "root",
		Password: "sekret",
	})
	require.NoError(t, err)

	resolved, err := env.auth.Resolve(context.Background(), login.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)
	assert.Equal(t, "root", resolved.Username)
}

func TestResolveMalformedToken(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Resolve(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestResolveUserNoLongerExists(t *testing.T) {
	env := newTestEnv(t)

	// Token signed with the right secret but bound to a user id that was
	// never created.
	token, err := crypto.GenerateToken("gone-id", "ghost", testSecret, time.Hour)
	require.NoError(t, err)

	_, err = env.auth.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}
