package config

import "time"

const (
	defaultHTTPAddress    = ":8080"
	defaultTokenIssuer    = "itemkeeper"
	defaultTokenDuration  = time.Hour
	defaultDatabaseDriver = "pgx"
	defaultRequestTimeout = 30 * time.Second
)

// applyDefaults fills every optional field that is still zero after all
// configuration sources have been merged. Secrets have no defaults.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = defaultTokenIssuer
	}
	if cfg.Auth.TokenDuration == 0 {
		cfg.Auth.TokenDuration = defaultTokenDuration
	}
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = defaultDatabaseDriver
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The token signing secret and the database DSN have no sensible defaults:
// a missing signing secret would make every issued token unverifiable, so
// its absence is a startup-fatal condition rather than a per-request error.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.DB.Driver != "pgx" && cfg.Storage.DB.Driver != "sqlite3" {
		return ErrUnsupportedDBDriver
	}

	return nil
}
