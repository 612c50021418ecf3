package models

import "time"

// Item is the single resource type managed by the service.
type Item struct {
	// ID is the unique identifier of the item. The database is the sole
	// assigner of ids; client-supplied values are never trusted.
	ID int64 `json:"id"`

	// Name is the short human-readable label of the item. Required.
	Name string `json:"name"`

	// Description is an optional free-form text describing the item.
	Description string `json:"description"`

	// CreatedAt is the timestamp when the item was first persisted.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last modification.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Item model.
func (i Item) TableName() string {
	return "items"
}
