package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/giftlist-api/internal/store"
)

// SQLSTATE codes the stores classify. Anything else passes through as is.
const (
	uniqueViolationCode           = "23505"
	foreignKeyViolationCode       = "23503"
	checkViolationCode            = "23514"
	notNullViolationCode          = "23502"
	invalidTextRepresentationCode = "22P02" // e.g. a malformed uuid literal
)

var pgErrorKinds = map[string]struct {
	sentinel error
	label    string
}{
	uniqueViolationCode:           {store.ErrDuplicate, "unique violation"},
	invalidTextRepresentationCode: {store.ErrInvalidID, "invalid text representation"},
	foreignKeyViolationCode:       {store.ErrInvalidEntity, "foreign key violation"},
	checkViolationCode:            {store.ErrInvalidEntity, "check violation"},
	notNullViolationCode:          {store.ErrInvalidEntity, "not null violation"},
}

// MapError translates a driver failure into the store sentinel callers branch
// on. The driver error stays in the message for logs; errors.Is only sees the
// sentinel. Unclassified errors are returned unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	kind, ok := pgErrorKinds[pgErr.Code]
	if !ok {
		return err
	}

	detail := pgErr.ConstraintName
	if pgErr.Code == notNullViolationCode {
		detail = pgErr.ColumnName
	}
	if detail == "" {
		return fmt.Errorf("%w: %s: %v", kind.sentinel, kind.label, err)
	}
	return fmt.Errorf("%w: %s (%s): %v", kind.sentinel, kind.label, detail, err)
}

// CheckRowsAffected returns notFound when an UPDATE or DELETE touched no row.
func CheckRowsAffected(result sql.Result, notFound error) error {
	if result == nil {
		return errors.New("check rows affected: nil result")
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}

// parseID validates the shape of an identifier before it reaches a query.
func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", store.ErrInvalidID, id)
	}
	return parsed, nil
}
