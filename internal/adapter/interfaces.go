// Package adapter provides a client-side SDK for communicating with the
// itemkeeper server.
//
// The primary abstraction is [ServerAdapter], which decouples callers from
// the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrForbidden] for 403).
package adapter

import (
	"context"

	"github.com/itemkeeper/itemkeeper/models"
)

// ServerAdapter defines transport-agnostic communication with the itemkeeper
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It is called automatically after a successful
	// Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account with the given credentials.
	Register(ctx context.Context, creds models.Credentials) error

	// Login authenticates with the server. On success the issued bearer token
	// is stored via SetToken and returned.
	Login(ctx context.Context, creds models.Credentials) (string, error)

	// CreateItem stores a new item and returns it with its server-assigned id.
	CreateItem(ctx context.Context, req models.ItemRequest) (models.Item, error)

	// GetItem fetches a single item by id. Returns [ErrNotFound] (wrapped)
	// when the id is unknown.
	GetItem(ctx context.Context, id int64) (models.Item, error)

	// GetAllItems fetches every stored item.
	GetAllItems(ctx context.Context) ([]models.Item, error)

	// UpdateItem rewrites the item with the given id. Returns [ErrNotFound]
	// (wrapped) when the id is unknown.
	UpdateItem(ctx context.Context, id int64, req models.ItemRequest) (models.Item, error)

	// DeleteItem removes the item with the given id. Returns [ErrNotFound]
	// (wrapped) when the id is unknown.
	DeleteItem(ctx context.Context, id int64) error

	// GetAllUsers fetches id+username summaries of every registered account.
	GetAllUsers(ctx context.Context) ([]models.UserSummary, error)

	// Profile fetches the username behind the stored token.
	Profile(ctx context.Context) (models.ProfileResponse, error)
}
