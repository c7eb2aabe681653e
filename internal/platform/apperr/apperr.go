// Package apperr define la taxonomía de errores que cruza la frontera HTTP.
// Cada Error lleva un kind (sentinel) y un mensaje legible para el cliente.
package apperr

import "errors"

var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrPreconditionFailed = errors.New("precondition failed")
	ErrNotFound           = errors.New("not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("conflict")
)

type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string {
	if e.msg == "" {
		return e.kind.Error()
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.kind }

func newErr(kind error, msg string) error {
	return &Error{kind: kind, msg: msg}
}

func Invalid(msg string) error      { return newErr(ErrInvalidArgument, msg) }
func Precondition(msg string) error { return newErr(ErrPreconditionFailed, msg) }
func NotFound(msg string) error     { return newErr(ErrNotFound, msg) }
func Unauthorized(msg string) error { return newErr(ErrUnauthorized, msg) }
func Forbidden(msg string) error    { return newErr(ErrForbidden, msg) }
func Conflict(msg string) error     { return newErr(ErrConflict, msg) }

// Kind devuelve el sentinel del error, o nil si no pertenece a la taxonomía.
func Kind(err error) error {
	for _, k := range []error{
		ErrInvalidArgument,
		ErrPreconditionFailed,
		ErrNotFound,
		ErrUnauthorized,
		ErrForbidden,
		ErrConflict,
	} {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}

// Message devuelve el texto apto para el cliente.
// Para errores fuera de la taxonomía devuelve fallback.
func Message(err error, fallback string) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Error()
	}
	if k := Kind(err); k != nil {
		return k.Error()
	}
	return fallback
}
