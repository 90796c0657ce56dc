package apperr

import (
	"errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

type Type string

const (
	TypeNotFound      Type = "NOT_FOUND"
	TypeUpstream      Type = "UPSTREAM_FAILURE"
	TypeConfigMissing Type = "CONFIGURATION_MISSING"
	TypeDatastore     Type = "DATASTORE_FAILURE"
	TypeConflict      Type = "CONFLICT"
	TypeInvalidInput  Type = "INVALID_INPUT"
	TypeInternal      Type = "INTERNAL"
)

// Error carries a classification, a client-safe message and the stack of the
// point where it was raised.
type Error struct {
	Type    Type
	Message string
	Err     error
	Stack   []byte
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) StackTrace() []byte {
	return e.Stack
}

func New(t Type, message string, err error) *Error {
	var stack []byte
	if err != nil {
		var ge *goerrors.Error
		if errors.As(err, &ge) {
			stack = ge.Stack()
		} else {
			stack = goerrors.Wrap(err, 2).Stack()
		}
	} else {
		stack = goerrors.New(message).Stack()
	}

	return &Error{
		Type:    t,
		Message: message,
		Err:     err,
		Stack:   stack,
	}
}

func NotFound(message string, err error) *Error {
	return New(TypeNotFound, message, err)
}

func Upstream(message string, err error) *Error {
	return New(TypeUpstream, message, err)
}

func ConfigMissing(message string, err error) *Error {
	return New(TypeConfigMissing, message, err)
}

func Datastore(message string, err error) *Error {
	return New(TypeDatastore, message, err)
}

func Conflict(message string, err error) *Error {
	return New(TypeConflict, message, err)
}

func InvalidInput(message string, err error) *Error {
	return New(TypeInvalidInput, message, err)
}

func Internal(message string, err error) *Error {
	return New(TypeInternal, message, err)
}

// TypeOf reports the classification of err, TypeInternal for foreign errors.
func TypeOf(err error) Type {
	var e *Error
	if errors.As(err, &e) {
		return e.Type
	}
	return TypeInternal
}

// Is reports whether err carries classification t anywhere in its chain.
func Is(err error, t Type) bool {
	if err == nil {
		return false
	}
	return TypeOf(err) == t
}

// Message returns the client-facing text for err.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return err.Error()
}
