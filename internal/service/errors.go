package service

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a lookup that matched no row. Handlers map it to 404;
// it is a distinct result, not an infrastructure failure.
var ErrNotFound = errors.New("not found")

// ValidationError rejects malformed or unresolvable request options before
// any store access. Handlers map it to 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a request-validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
