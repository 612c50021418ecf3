package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrMissingTokenSignKey indicates that no token signing secret was
	// provided by any configuration source. Token issuance and verification
	// cannot function without it, so startup is aborted.
	ErrMissingTokenSignKey = errors.New("missing token signing key")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrUnsupportedDBDriver indicates that the configured database driver
	// is neither "pgx" nor "sqlite3".
	ErrUnsupportedDBDriver = errors.New("unsupported database driver")
)
