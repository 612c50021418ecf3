package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itemkeeper/itemkeeper/internal/logger"
	"github.com/itemkeeper/itemkeeper/internal/store"
	"github.com/itemkeeper/itemkeeper/models"
)

func TestGetAllUsers_HidesPasswordHashes(t *testing.T) {
	repo := newFakeUserRepo()
	auth := newTestAuthService(repo)
	svc := NewUserService(repo, logger.Nop())
	ctx := context.Background()

	_, err := auth.Register(ctx, models.Credentials{Username: "alice", Password: "secret1"})
	require.NoError(t, err)
	_, err = auth.Register(ctx, models.Credentials{Username: "bob", Password: "secret2"})
	require.NoError(t, err)

	summaries, err := svc.GetAllUsers(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	usernames := make([]string, 0, len(summaries))
	for _, s := range summaries {
		assert.NotZero(t, s.UserID)
		usernames = append(usernames, s.Username)
	}
	assert.ElementsMatch(t, []string{"alice", "bob"}, usernames)
}

func TestGetAllUsers_Empty(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), logger.Nop())

	summaries, err := svc.GetAllUsers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestProfile_Success(t *testing.T) {
	repo := newFakeUserRepo()
	auth := newTestAuthService(repo)
	svc := NewUserService(repo, logger.Nop())
	ctx := context.Background()

	registered, err := auth.Register(ctx, models.Credentials{Username: "alice", Password: "secret1"})
	require.NoError(t, err)

	profile, err := svc.Profile(ctx, registered.UserID)
	require.NoError(t, err)
	assert.Equal(t, registered.UserID, profile.UserID)
	assert.Equal(t, "alice", profile.Username)
}

func TestProfile_UnknownUser(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), logger.Nop())

	_, err := svc.Profile(context.Background(), 42)
	assert.True(t, errors.Is(err, store.ErrNoUserWasFound), "got %v", err)
}
