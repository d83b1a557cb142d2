package postgres

import (
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return db, mock
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var fixedTime = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

var wishColumnNames = []string{
	"id", "owner_id", "name", "link", "image", "price", "raised", "description", "copied", "created_at", "updated_at",
}

func wishRow(rows *sqlmock.Rows, id, ownerID uuid.UUID, name string) *sqlmock.Rows {
	return rows.AddRow(id.String(), ownerID.String(), name, "https://shop.example.com/"+name, "https://img.example.com/"+name,
		19.99, 0.0, "", 0, fixedTime, fixedTime)
}
