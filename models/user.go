package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is assigned by the database and is immutable afterwards.
	UserID int64 `json:"id"`

	// Username is the unique login identifier of the user.
	Username string `json:"username"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// This value MUST be a derived value (hash output), never plaintext.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"-"`
}

// Summary returns the non-sensitive projection of the user that is safe to
// return to API callers: id and username only.
func (u User) Summary() UserSummary {
	return UserSummary{
		UserID:   u.UserID,
		Username: u.Username,
	}
}

// UserSummary is the public projection of a [User].
// It never carries credential material.
type UserSummary struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
