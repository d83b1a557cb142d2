package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/giftlist-api/internal/domain"
	"github.com/phrazzld/giftlist-api/internal/platform/logger"
	"github.com/phrazzld/giftlist-api/internal/store"
)

// Error kinds returned by every service operation. Callers check them with
// errors.Is; the API layer maps each kind to a transport status.
var (
	// ErrInvalidInput covers validation failures, malformed identifiers and
	// the lookup misses that are deliberately not reported as ErrNotFound.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict indicates a username or email uniqueness violation.
	ErrConflict = errors.New("conflict")

	// ErrUnauthorized indicates that credentials did not check out. It never
	// says whether the user exists.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates that the caller does not own the resource.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound indicates that a well-formed identifier matched nothing.
	ErrNotFound = errors.New("not found")

	// ErrFatal wraps every storage or collaborator failure without a known
	// classification.
	ErrFatal = errors.New("internal failure")
)

// Error is the error type returned by service operations.
//
// Kind is one of the sentinel kinds above. Message is safe to show to the
// caller. Err, when set, is the underlying cause and must not be exposed.
type Error struct {
	Operation  string
	Kind       error
	Message    string
	Violations []domain.Violation
	Err        error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Operation, e.Message)
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	errs := []error{e.Kind}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// NewError creates an Error of the given kind.
func NewError(operation string, kind error, message string, cause error) *Error {
	return &Error{
		Operation: operation,
		Kind:      kind,
		Message:   message,
		Err:       cause,
	}
}

// errorMessages carries the caller-facing messages one operation uses when
// a store failure is classified.
type errorMessages struct {
	// Conflict is used for uniqueness violations.
	Conflict string
	// InvalidID is used for malformed identifiers.
	InvalidID string
	// NotFound is used for a well-formed identifier that matched nothing.
	NotFound string
	// NotFoundKind overrides ErrNotFound for lookups that fold misses into
	// another kind.
	NotFoundKind error
}

// classifyStoreError maps a store failure to a service error. It is the only
// place where store sentinels become service kinds. Anything it does not
// recognize becomes ErrFatal.
func classifyStoreError(
	ctx context.Context,
	log *slog.Logger,
	operation string,
	err error,
	msgs errorMessages,
) error {
	log = logger.FromContextOrDefault(ctx, log)

	switch {
	case store.IsDuplicateError(err):
		log.Debug("uniqueness violation", "operation", operation, "error", err)
		return NewError(operation, ErrConflict, orDefault(msgs.Conflict, "entity already exists"), err)

	case errors.Is(err, store.ErrInvalidID), errors.Is(err, domain.ErrInvalidID):
		log.Debug("malformed identifier", "operation", operation, "error", err)
		return NewError(operation, ErrInvalidInput, orDefault(msgs.InvalidID, "malformed identifier"), err)

	case store.IsNotFoundError(err):
		log.Debug("entity not found", "operation", operation, "error", err)
		kind := msgs.NotFoundKind
		if kind == nil {
			kind = ErrNotFound
		}
		return NewError(operation, kind, orDefault(msgs.NotFound, "not found"), err)

	case errors.Is(err, store.ErrInvalidEntity):
		log.Debug("store rejected entity", "operation", operation, "error", err)
		return NewError(operation, ErrInvalidInput, "entity violates a storage constraint", err)

	default:
		log.Error("unclassified store failure", "operation", operation, "error", err)
		return NewError(operation, ErrFatal, "internal failure", err)
	}
}

// validationError wraps a failed validation gate in an ErrInvalidInput error
// carrying one violation per failed constraint.
func validationError(operation string, err error) error {
	e := NewError(operation, ErrInvalidInput, "validation failed", err)
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		e.Violations = verr.Violations
		e.Message = verr.Error()
	}
	return e
}

// fatalError wraps a collaborator failure, such as hashing or signing.
func fatalError(operation string, err error) error {
	return NewError(operation, ErrFatal, "internal failure", err)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
