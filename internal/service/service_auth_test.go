package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itemkeeper/itemkeeper/internal/config"
	"github.com/itemkeeper/itemkeeper/internal/logger"
	"github.com/itemkeeper/itemkeeper/internal/store"
	"github.com/itemkeeper/itemkeeper/models"
)

// fakeUserRepo is an in-memory stand-in for the credential store.
type fakeUserRepo struct {
	users  map[string]models.User
	nextID int64

	createErr error
	findErr   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]models.User{}, nextID: 1}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user models.User) (models.User, error) {
	if f.createErr != nil {
		return models.User{}, f.createErr
	}
	if _, exists := f.users[user.Username]; exists {
		return models.User{}, store.ErrUsernameAlreadyExists
	}
	user.UserID = f.nextID
	f.nextID++
	f.users[user.Username] = user
	return user, nil
}

func (f *fakeUserRepo) FindUserByUsername(_ context.Context, username string) (models.User, error) {
	if f.findErr != nil {
		return models.User{}, f.findErr
	}
	user, ok := f.users[username]
	if !ok {
		return models.User{}, store.ErrNoUserWasFound
	}
	return user, nil
}

func (f *fakeUserRepo) FindUserByID(_ context.Context, id int64) (models.User, error) {
	for _, u := range f.users {
		if u.UserID == id {
			return u, nil
		}
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (f *fakeUserRepo) GetAllUsers(_ context.Context) ([]models.User, error) {
	var users []models.User
	for _, u := range f.users {
		users = append(users, u)
	}
	return users, nil
}

func testAuthConfig() config.Auth {
	return config.Auth{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "itemkeeper-test",
		TokenDuration: time.Hour,
	}
}

func newTestAuthService(repo store.UserRepository) AuthService {
	return NewAuthService(repo, testAuthConfig(), logger.Nop())
}

func TestRegister_Success(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())

	summary, err := svc.Register(context.Background(), models.Credentials{
		Username: "alice",
		Password: "secret1",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), summary.UserID)
	assert.Equal(t, "alice", summary.Username)
}

func TestRegister_ThenLogin_RoundTrip(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	creds := models.Credentials{Username: "alice", Password: "secret1"}

	_, err := svc.Register(ctx, creds)
	require.NoError(t, err)

	token, err := svc.Login(ctx, creds)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	// the issued token verifies and resolves to the registered identity
	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(1), parsed.UserID)
	assert.Equal(t, "alice", parsed.Username)
}

func TestRegister_HashIsSaltedAndNeverPlaintext(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, models.Credentials{Username: "alice", Password: "secret1"})
	require.NoError(t, err)
	_, err = svc.Register(ctx, models.Credentials{Username: "bob", Password: "secret1"})
	require.NoError(t, err)

	assert.NotEqual(t, "secret1", repo.users["alice"].PasswordHash)
	// same plaintext, different digests: the salt is per call
	assert.NotEqual(t, repo.users["alice"].PasswordHash, repo.users["bob"].PasswordHash)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, models.Credentials{Username: "alice", Password: "secret1"})
	require.NoError(t, err)

	// a different password does not help
	_, err = svc.Register(ctx, models.Credentials{Username: "alice", Password: "another-password"})
	assert.True(t, errors.Is(err, store.ErrUsernameAlreadyExists), "got %v", err)
}

func TestRegister_Validation(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())
	ctx := context.Background()

	tests := []struct {
		name  string
		creds models.Credentials
	}{
		{"empty username", models.Credentials{Username: "", Password: "secret1"}},
		{"blank username", models.Credentials{Username: "   ", Password: "secret1"}},
		{"short password", models.Credentials{Username: "alice", Password: "five5"}},
		{"both invalid", models.Credentials{Username: "", Password: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.creds)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr), "expected ValidationError, got %v", err)
			assert.NotEmpty(t, vErr.Messages)
		})
	}
}

func TestLogin_WrongPasswordAndUnknownUserAreIndistinguishable(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, models.Credentials{Username: "alice", Password: "secret1"})
	require.NoError(t, err)

	_, wrongPassErr := svc.Login(ctx, models.Credentials{Username: "alice", Password: "wrong-1"})
	_, noUserErr := svc.Login(ctx, models.Credentials{Username: "nobody", Password: "secret1"})

	assert.True(t, errors.Is(wrongPassErr, ErrInvalidCredentials))
	assert.True(t, errors.Is(noUserErr, ErrInvalidCredentials))
	assert.Equal(t, wrongPassErr.Error(), noUserErr.Error())
}

func TestLogin_Validation(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())

	_, err := svc.Login(context.Background(), models.Credentials{Username: "", Password: "x"})

	var vErr *ValidationError
	assert.True(t, errors.As(err, &vErr), "expected ValidationError, got %v", err)
}

func TestLogin_RepositoryFailure(t *testing.T) {
	repo := newFakeUserRepo()
	repo.findErr = errors.New("connection lost")
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), models.Credentials{Username: "alice", Password: "secret1"})
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidCredentials), "infra failures must not masquerade as bad credentials")
}

func TestParseToken_Expired(t *testing.T) {
	repo := newFakeUserRepo()
	ctx := context.Background()

	shortLived := NewAuthService(repo, config.Auth{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "itemkeeper-test",
		TokenDuration: -time.Second,
	}, logger.Nop())

	_, err := shortLived.Register(ctx, models.Credentials{Username: "alice", Password: "secret1"})
	require.NoError(t, err)

	token, err := shortLived.Login(ctx, models.Credentials{Username: "alice", Password: "secret1"})
	require.NoError(t, err)

	_, err = shortLived.ParseToken(ctx, token.SignedString)
	assert.True(t, errors.Is(err, ErrTokenIsExpired), "got %v", err)
}

func TestParseToken_Forged(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	otherKey := NewAuthService(repo, config.Auth{
		TokenSignKey:  "a-different-key",
		TokenIssuer:   "itemkeeper-test",
		TokenDuration: time.Hour,
	}, logger.Nop())

	_, err := svc.Register(ctx, models.Credentials{Username: "alice", Password: "secret1"})
	require.NoError(t, err)

	token, err := otherKey.Login(ctx, models.Credentials{Username: "alice", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.ParseToken(ctx, token.SignedString)
	assert.True(t, errors.Is(err, ErrTokenIsInvalid), "got %v", err)
	assert.False(t, errors.Is(err, ErrTokenIsExpired))
}

func TestParseToken_Garbage(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())

	_, err := svc.ParseToken(context.Background(), "garbage")
	assert.True(t, errors.Is(err, ErrTokenIsInvalid), "got %v", err)
}
