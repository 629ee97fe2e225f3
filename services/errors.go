package services

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies a failed backend operation.
type ErrorKind uint8

const (
	KindUnknown ErrorKind = iota
	KindNetwork
	KindHTTP
	KindValidation
)

var errorKindNames = map[ErrorKind]string{
	KindUnknown:    "unknown",
	KindNetwork:    "network",
	KindHTTP:       "http",
	KindValidation: "validation",
}

func (k ErrorKind) String() string {
	return errorKindNames[k]
}

var ErrNoCredential = errors.New("no authentication token found, please log in")

// NetworkError means the request never produced a response.
type NetworkError struct {
	Method string
	Path   string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error on %s %s: %v", e.Method, e.Path, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError is a response outside 200-299. Message comes from the JSON
// body's "message" field when there is one.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP error! status: %d", e.Status)
}

// ValidationError is raised before any request is sent.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func Validationf(field, format string, a ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, a...)}
}

// KindOf reports which branch of the taxonomy err belongs to.
func KindOf(err error) ErrorKind {
	var ne *NetworkError
	var he *HTTPError
	var ve *ValidationError
	switch {
	case err == nil:
		return KindUnknown
	case errors.As(err, &ve):
		return KindValidation
	case errors.As(err, &he):
		return KindHTTP
	case errors.As(err, &ne):
		return KindNetwork
	case errors.Is(err, ErrNoCredential):
		return KindValidation
	}
	return KindUnknown
}

// StatusOf returns the upstream status of an HTTPError, or 0.
func StatusOf(err error) int {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.Status
	}
	return 0
}

// IsNotFound reports an upstream 404.
func IsNotFound(err error) bool {
	return StatusOf(err) == http.StatusNotFound
}
