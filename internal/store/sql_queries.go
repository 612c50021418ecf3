package store

import (
	"github.com/Masterminds/squirrel"
)

// User queries are static and kept as plain constants; item queries carry
// per-call argument sets and are built with squirrel instead.
const (
	createUser = `INSERT INTO users (username, password_hash)
    VALUES ($1, $2)
    RETURNING id, username, password_hash, created_at;`

	findUserByUsername = `SELECT id, username, password_hash, created_at
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT id, username, password_hash, created_at
    FROM users
    WHERE id = $1;`

	getAllUsers = `SELECT id, username, password_hash, created_at
    FROM users
    ORDER BY id ASC;`
)

// itemColumns is the canonical column order scanned into models.Item.
var itemColumns = []string{"id", "name", "description", "created_at", "updated_at"}

// psql is the statement builder shared by all item queries. Both supported
// drivers understand dollar placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func buildCreateItem(name, description string) (string, []any, error) {
	return psql.Insert("items").
		Columns("name", "description").
		Values(name, description).
		Suffix("RETURNING id, name, description, created_at, updated_at").
		ToSql()
}

func buildGetItem(id int64) (string, []any, error) {
	return psql.Select(itemColumns...).
		From("items").
		Where(squirrel.Eq{"id": id}).
		ToSql()
}

func buildGetAllItems() (string, []any, error) {
	return psql.Select(itemColumns...).
		From("items").
		OrderBy("id ASC").
		ToSql()
}

func buildUpdateItem(id int64, name, description string) (string, []any, error) {
	return psql.Update("items").
		Set("name", name).
		Set("description", description).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, name, description, created_at, updated_at").
		ToSql()
}

func buildDeleteItem(id int64) (string, []any, error) {
	return psql.Delete("items").
		Where(squirrel.Eq{"id": id}).
		ToSql()
}
