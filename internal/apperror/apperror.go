// Package apperror holds the error taxonomy shared by services and controllers.
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAccessDenied  = errors.New("access denied")
	ErrAlreadyExists = errors.New("already exists")
	ErrBadRequest    = errors.New("bad request")
	ErrUnauthorized  = errors.New("unauthorized")
)

// NotFound reports a missing entity, e.g. NotFound("product") -> "product not found".
func NotFound(entity string) error {
	return fmt.Errorf("%s %w", entity, ErrNotFound)
}

func AccessDenied(reason string) error {
	return fmt.Errorf("%w: %s", ErrAccessDenied, reason)
}

func AlreadyExists(format string, args ...any) error {
	return fmt.Errorf("%s %w", fmt.Sprintf(format, args...), ErrAlreadyExists)
}

func BadRequest(reason string) error {
	return fmt.Errorf("%w: %s", ErrBadRequest, reason)
}

func Unauthorized(reason string) error {
	return fmt.Errorf("%w: %s", ErrUnauthorized, reason)
}

// IsDomain reports whether err belongs to the taxonomy and is safe to show to clients.
func IsDomain(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrAccessDenied) ||
		errors.Is(err, ErrAlreadyExists) ||
		errors.Is(err, ErrBadRequest) ||
		errors.Is(err, ErrUnauthorized)
}
