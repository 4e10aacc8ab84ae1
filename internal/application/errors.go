package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound       = errors.New("not found")
	ErrImportFailed   = errors.New("import failed")
	ErrNothingChanged = errors.New("nothing to change")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError reports a contact id that is not in the collection
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("contact %s not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ImportError represents a rejected snapshot; the collection was not modified
type ImportError struct {
	Source string
	Err    error
}

func (e *ImportError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("import failed: %v", e.Err)
	}
	return fmt.Sprintf("import from %s failed: %v", e.Source, e.Err)
}

func (e *ImportError) Is(target error) bool {
	return target == ErrImportFailed
}

func (e *ImportError) Unwrap() error {
	return e.Err
}
