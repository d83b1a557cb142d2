package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// MaxPasswordBytes is the longest input bcrypt accepts. The limit is in
// bytes, so a multibyte password reaches it with fewer characters.
const MaxPasswordBytes = 72

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// entityValidator returns the shared validator instance. The validator caches
// struct metadata, so a single instance is reused for every entity.
func entityValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Report violations with the JSON field name callers know.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return lowerFirst(fld.Name)
			}
			return name
		})
		// Registration only fails for an empty tag or a nil func.
		_ = validate.RegisterValidation("bcryptmax", func(fl validator.FieldLevel) bool {
			return len(fl.Field().String()) <= MaxPasswordBytes
		})
	})
	return validate
}

// Violation describes a single failed field-level constraint.
type Violation struct {
	Field      string `json:"field"`
	Constraint string `json:"constraint"`
	Message    string `json:"message"`
}

// ValidationError is returned by Validate when at least one constraint fails.
// It carries one Violation per failed field constraint and wraps ErrValidation.
type ValidationError struct {
	Violations []Violation
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Message)
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(msgs, "; "))
}

// Unwrap returns ErrValidation so callers can use errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Validate runs the struct constraints of an entity candidate. It has no side
// effects and must be called after defaults and merges are applied, right
// before the candidate is handed to a store.
func Validate(entity any) error {
	err := entityValidator().Struct(entity)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// InvalidValidationError: the caller passed something that is not a struct.
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	violations := make([]Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := fe.Field()
		if fe.Tag() == "required_without" {
			// A missing digest means the caller supplied no password at all.
			field = lowerFirst(fe.Param())
		}
		violations = append(violations, Violation{
			Field:      field,
			Constraint: fe.Tag(),
			Message:    violationMessage(field, fe),
		})
	}
	return &ValidationError{Violations: violations}
}

// violationMessage renders a human readable message for a failed constraint.
func violationMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_without":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
	case "bcryptmax":
		return fmt.Sprintf("%s must be at most %d bytes long", field, MaxPasswordBytes)
	default:
		return fmt.Sprintf("%s failed on the %q constraint", field, fe.Tag())
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
