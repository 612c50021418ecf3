package service

import (
	"github.com/itemkeeper/itemkeeper/internal/config"
	"github.com/itemkeeper/itemkeeper/internal/logger"
	"github.com/itemkeeper/itemkeeper/internal/store"
)

// Services aggregates every business-logic service of the application.
type Services struct {
	AuthService AuthService
	ItemService ItemService
	UserService UserService
}

// NewServices wires all services to their repositories and configuration.
func NewServices(storages *store.Storages, cfg config.Auth, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg, logger),
		ItemService: NewItemService(storages.ItemRepository, logger),
		UserService: NewUserService(storages.UserRepository, logger),
	}
}
