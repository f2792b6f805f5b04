package domain

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// PreconditionError rejects operations whose required prior step is missing,
// e.g. finalizing a booking before a room was selected.
type PreconditionError struct {
	Msg string
	Err error
}

func (e PreconditionError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "precondition failed"
}

func (e PreconditionError) Unwrap() error { return e.Err }

// UnavailableError marks a collaborator (session store, room search, message
// log) that could not be reached in time. Callers degrade to a safe default
// reply instead of surfacing it.
type UnavailableError struct {
	Collaborator string
	Err          error
}

func (e UnavailableError) Error() string {
	if e.Collaborator == "" {
		return "collaborator unavailable"
	}
	return fmt.Sprintf("%s unavailable", e.Collaborator)
}

func (e UnavailableError) Unwrap() error { return e.Err }

// MalformedError marks stored payloads that cannot be decoded.
type MalformedError struct {
	What string
	Err  error
}

func (e MalformedError) Error() string {
	if e.What != "" {
		return fmt.Sprintf("malformed %s", e.What)
	}
	return "malformed input"
}

func (e MalformedError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsPrecondition(err error) bool {
	var target PreconditionError
	return errors.As(err, &target)
}

func IsUnavailable(err error) bool {
	var target UnavailableError
	return errors.As(err, &target)
}

func IsMalformed(err error) bool {
	var target MalformedError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}
