// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces defined in the internal/store package, together with the
// embedded goose migrations that create their schema.
//
// Every driver error leaving this package has been passed through MapError,
// so callers only need to match the store sentinels.
package postgres
