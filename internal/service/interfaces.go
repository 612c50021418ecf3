package service

import (
	"context"

	"github.com/itemkeeper/itemkeeper/models"
)

// AuthService orchestrates credential registration, credential verification,
// and session-token lifecycle.
type AuthService interface {
	// Register validates the credentials, hashes the password, and persists
	// a new account. Returns the non-sensitive user summary.
	Register(ctx context.Context, creds models.Credentials) (models.UserSummary, error)

	// Login verifies the credentials and issues a session token. A missing
	// user and a wrong password are indistinguishable to the caller.
	Login(ctx context.Context, creds models.Credentials) (models.Token, error)

	// ParseToken validates a raw token string and returns the decoded token.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ItemService applies request-level validation before delegating to the
// item repository.
type ItemService interface {
	CreateItem(ctx context.Context, req models.ItemRequest) (models.Item, error)
	GetItem(ctx context.Context, id int64) (models.Item, error)
	GetAllItems(ctx context.Context) ([]models.Item, error)
	UpdateItem(ctx context.Context, id int64, req models.ItemRequest) (models.Item, error)
	DeleteItem(ctx context.Context, id int64) error
}

// UserService exposes read-only views of registered accounts.
type UserService interface {
	// GetAllUsers returns id+username summaries ordered by id ascending.
	GetAllUsers(ctx context.Context) ([]models.UserSummary, error)

	// Profile resolves the account behind an authenticated user id.
	Profile(ctx context.Context, userID int64) (models.UserSummary, error)
}
