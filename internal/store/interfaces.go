package store

import (
	"context"

	"github.com/itemkeeper/itemkeeper/models"
)

// UserRepository is the credential store: it owns the users table and is the
// only component allowed to read or write password hashes.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
}

// ItemRepository provides create/read/update/delete access to the items
// table. The repository is the sole assigner of item ids.
type ItemRepository interface {
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)
	GetItem(ctx context.Context, id int64) (models.Item, error)
	GetAllItems(ctx context.Context) ([]models.Item, error)
	UpdateItem(ctx context.Context, item models.Item) (models.Item, error)
	DeleteItem(ctx context.Context, id int64) error
}
