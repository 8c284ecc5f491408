package transport

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameters is returned synchronously, before any request is sent
	ErrInvalidParameters = errors.New("invalid parameters")
	// ErrInvalidURL is returned synchronously when the query cannot be encoded
	ErrInvalidURL = errors.New("invalid URL")
	// ErrNetworkFailure is only ever delivered through a Result
	ErrNetworkFailure = errors.New("network failure")
)

// ParameterError describes the first rejected field of a query
type ParameterError struct {
	Field  string
	Reason string
}

func (e *ParameterError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidParameters, e.Reason)
	}
	return fmt.Sprintf("%s: %s %s", ErrInvalidParameters, e.Field, e.Reason)
}

func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameters
}

func NewParameterError(field, reason string) *ParameterError {
	return &ParameterError{
		Field:  field,
		Reason: reason,
	}
}

// URLError is returned when a query string cannot be percent-encoded into a URL
type URLError struct {
	Resource Resource
	Err      error
}

func (e *URLError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s for %s: %v", ErrInvalidURL, e.Resource, e.Err)
	}
	return fmt.Sprintf("%s for %s", ErrInvalidURL, e.Resource)
}

func (e *URLError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidURL}
	}
	return []error{ErrInvalidURL, e.Err}
}

func NewURLError(resource Resource, err error) *URLError {
	return &URLError{
		Resource: resource,
		Err:      err,
	}
}

// NetworkError is the failure variant of a Result. StatusCode is 0 when no
// response was received; Err is the underlying cause and may be nil.
type NetworkError struct {
	Resource   Resource
	StatusCode int
	Message    string
	Err        error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s on %s: %s: %v", ErrNetworkFailure, e.Resource, e.Message, e.Err)
	}
	return fmt.Sprintf("%s on %s: %s", ErrNetworkFailure, e.Resource, e.Message)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func (e *NetworkError) Is(target error) bool {
	return target == ErrNetworkFailure
}

func NewNetworkError(resource Resource, statusCode int, message string, err error) *NetworkError {
	return &NetworkError{
		Resource:   resource,
		StatusCode: statusCode,
		Message:    message,
		Err:        err,
	}
}
