// Package config handles configuration loading, parsing, and validation
// from environment variables, an optional .env file and an optional
// config.yaml. Environment variables use the GIFTLIST_ prefix, with nested
// keys joined by underscores (GIFTLIST_AUTH_JWT_SECRET).
package config
