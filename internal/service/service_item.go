package service

import (
	"context"
	"strings"

	"github.com/itemkeeper/itemkeeper/internal/logger"
	"github.com/itemkeeper/itemkeeper/internal/store"
	"github.com/itemkeeper/itemkeeper/models"
)

// itemService is the concrete implementation of ItemService. It validates
// request bodies and leaves id assignment entirely to the repository.
type itemService struct {
	itemRepository store.ItemRepository
	logger         *logger.Logger
}

// NewItemService constructs an ItemService backed by the given repository.
func NewItemService(itemRepository store.ItemRepository, logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		logger:         logger,
	}
}

// CreateItem validates the request and persists a new item. The repository
// assigns the id; any id a client smuggles into the body never reaches SQL.
func (s *itemService) CreateItem(ctx context.Context, req models.ItemRequest) (models.Item, error) {
	if err := validateItemRequest(req); err != nil {
		logger.FromContext(ctx).Debug().Msg("invalid item data provided")
		return models.Item{}, err
	}

	return s.itemRepository.CreateItem(ctx, models.Item{
		Name:        req.Name,
		Description: req.Description,
	})
}

// GetItem returns the item with the given id or store.ErrItemNotFound.
func (s *itemService) GetItem(ctx context.Context, id int64) (models.Item, error) {
	return s.itemRepository.GetItem(ctx, id)
}

// GetAllItems returns every item ordered by id ascending.
func (s *itemService) GetAllItems(ctx context.Context) ([]models.Item, error) {
	return s.itemRepository.GetAllItems(ctx)
}

// UpdateItem validates the request and rewrites the item addressed by the id
// the handler resolved from the request path.
func (s *itemService) UpdateItem(ctx context.Context, id int64, req models.ItemRequest) (models.Item, error) {
	if err := validateItemRequest(req); err != nil {
		logger.FromContext(ctx).Debug().Msg("invalid item data provided")
		return models.Item{}, err
	}

	return s.itemRepository.UpdateItem(ctx, models.Item{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
	})
}

// DeleteItem removes the item with the given id.
func (s *itemService) DeleteItem(ctx context.Context, id int64) error {
	return s.itemRepository.DeleteItem(ctx, id)
}

func validateItemRequest(req models.ItemRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return NewValidationError("name must not be empty")
	}

	return nil
}
