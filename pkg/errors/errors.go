package errors

import (
	"errors"
	"fmt"
)

// InvalidArgumentError reports a constructor argument that violated its
// constraint. Construction aborts and no instance is produced.
type InvalidArgumentError struct {
	Field  string
	Reason string
}

// Error implements the error interface
func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Field, e.Reason)
}

// ModelNotFoundError reports a model id that matched no entry in a listing
type ModelNotFoundError struct {
	ModelID string
}

// Error implements the error interface
func (e *ModelNotFoundError) Error() string {
	return fmt.Sprintf("model %q not found", e.ModelID)
}

// IsInvalidArgument returns true if err is an InvalidArgumentError
func IsInvalidArgument(err error) bool {
	var target *InvalidArgumentError
	return errors.As(err, &target)
}

// IsModelNotFound returns true if err is a ModelNotFoundError
func IsModelNotFound(err error) bool {
	var target *ModelNotFoundError
	return errors.As(err, &target)
}
