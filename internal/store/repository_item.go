package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itemkeeper/itemkeeper/internal/logger"
	"github.com/itemkeeper/itemkeeper/models"
)

// itemRepository is the SQL-backed implementation of [ItemRepository].
//
// All statements are built with squirrel (see sql_queries.go) using dollar
// placeholders, which both supported drivers understand. The database is the
// sole assigner of item ids: CreateItem never forwards a client id, and
// UpdateItem addresses the row strictly by the id the caller resolved from
// the request path.
type itemRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewItemRepository constructs an [ItemRepository] backed by the provided
// database connection and logger.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		db:     db,
		logger: logger,
	}
}

// CreateItem inserts a new item and returns the row as persisted, including
// the server-assigned id and timestamps.
func (r *itemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateItem(item.Name, item.Description)
	if err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	var created models.Item
	if err := row.Scan(&created.ID, &created.Name, &created.Description, &created.CreatedAt, &created.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*itemRepository.CreateItem").Msg("error: inserting item")
		return models.Item{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// GetItem returns the item with the given id or [ErrItemNotFound].
func (r *itemRepository) GetItem(ctx context.Context, id int64) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetItem(id)
	if err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	var item models.Item
	if err := row.Scan(&item.ID, &item.Name, &item.Description, &item.CreatedAt, &item.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, ErrItemNotFound
		}

		log.Err(err).Str("func", "*itemRepository.GetItem").Msg("error: scanning item")
		return models.Item{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return item, nil
}

// GetAllItems returns every item ordered by id ascending.
func (r *itemRepository) GetAllItems(ctx context.Context) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetAllItems()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.GetAllItems").Msg("error: querying items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.CreatedAt, &item.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*itemRepository.GetAllItems").Msg("error: scanning item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

// UpdateItem rewrites the name and description of the row addressed by
// item.ID and returns the updated row. Returns [ErrItemNotFound] when no row
// has that id.
func (r *itemRepository) UpdateItem(ctx context.Context, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateItem(item.ID, item.Name, item.Description)
	if err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	var updated models.Item
	if err := row.Scan(&updated.ID, &updated.Name, &updated.Description, &updated.CreatedAt, &updated.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, ErrItemNotFound
		}

		log.Err(err).Str("func", "*itemRepository.UpdateItem").Msg("error: updating item")
		return models.Item{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteItem removes the row with the given id. Returns [ErrItemNotFound]
// when the id matched nothing.
func (r *itemRepository) DeleteItem(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteItem(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.DeleteItem").Msg("error: deleting item")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}
