package contract

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindMalformedID
	KindValidation
	KindNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindMalformedID:
		return "malformed_id"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// StoreError is the error category surfaced by note stores and services.
type StoreError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func MalformedID(id string, err error) error {
	return &StoreError{Kind: KindMalformedID, Message: fmt.Sprintf("malformatted id %q", id), Err: err}
}

func ValidationFailed(message string) error {
	return &StoreError{Kind: KindValidation, Message: message}
}

func NotFound(id string) error {
	return &StoreError{Kind: KindNotFound, Message: fmt.Sprintf("note %s not found", id)}
}

// KindOf returns the kind of the first StoreError in err's chain.
func KindOf(err error) ErrorKind {
	var se *StoreError
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindUnknown
}

func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
