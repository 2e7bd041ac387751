package teibun

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for catalog operations.
// All use prefix "teibun:" for identification. Callers should use errors.Is/errors.As.
var (
	ErrUnauthorized    = errors.New("teibun: actor not authorized for master catalog write")
	ErrInvalidArgument = errors.New("teibun: invalid argument")
	ErrMasterReadOnly  = errors.New("teibun: master snippets are read-only")
	ErrSnippetNotFound = errors.New("teibun: snippet not found in catalog")
)

// AuthError wraps ErrUnauthorized with the actor and the departments the
// actor attempted to write. Use errors.Is(err, ErrUnauthorized) and
// errors.As(err, &authErr) to inspect.
type AuthError struct {
	Actor       string
	Role        Role
	Departments []string
}

// Error implements error.
func (e *AuthError) Error() string {
	return fmt.Sprintf("teibun: %s (%s) may not write master folders for [%s]",
		e.Actor, e.Role, strings.Join(e.Departments, ", "))
}

// Unwrap returns ErrUnauthorized for errors.Is.
func (e *AuthError) Unwrap() error { return ErrUnauthorized }

// Compile-time check that AuthError implements error.
var _ error = (*AuthError)(nil)
