package testutils

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver

	"github.com/phrazzld/giftlist-api/internal/platform/postgres"
)

// DatabaseURLEnv names the variable holding the integration database URL.
const DatabaseURLEnv = "DATABASE_URL"

// GetTestDatabaseURL returns the integration database URL, or "" when
// integration tests should be skipped.
func GetTestDatabaseURL() string {
	return os.Getenv(DatabaseURLEnv)
}

// RequireDatabase skips t unless DATABASE_URL is set. Otherwise it returns
// an open, migrated database that is closed when the test ends.
func RequireDatabase(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		t.Skipf("%s not set, skipping integration test", DatabaseURLEnv)
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}
	if err := postgres.Migrate(ctx, db, "up", slog.New(slog.NewTextHandler(io.Discard, nil))); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}
	return db
}
