package usecase

import (
	"errors"
	"fmt"
	"strings"

	"permitpro/internal/usecase/interfaces"
)

var (
	ErrPackageNotFound    = errors.New("package not found")
	ErrUnauthorized       = errors.New("caller may not access this package")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// FieldError names one invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every invalid field of a request, not just the
// first, so the caller can fix them all in one round trip.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return fmt.Sprintf("invalid fields: %s", strings.Join(names, ", "))
}

// storageErr wraps repository failures as ErrStorageUnavailable. ErrConflict
// passes through untouched: it is a domain outcome (lost race), not an
// availability problem.
func storageErr(err error) error {
	if errors.Is(err, interfaces.ErrConflict) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
}
