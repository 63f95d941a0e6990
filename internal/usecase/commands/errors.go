package commands

import (
	"fmt"

	"bookstore-api/internal/infra"
	"bookstore-api/internal/pkg/errs"
)

// FieldError is a validation failure attributable to one request field.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func fieldError(field string, err error) error {
	return errs.Mark(&FieldError{Field: field, Err: err}, errs.ErrDomainValidation)
}

// markNotFound attaches the sentinel to repository not-found errors and leaves others untouched.
func markNotFound(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return err
}
