// Package errors provides the typed failures returned by the checklist,
// speech and chat clients.
package errors

import (
	"errors"
	"fmt"
)

var (
	ErrRemoteService      = errors.New("remote service error")
	ErrMalformedResponse  = errors.New("malformed response")
	ErrSchemaValidation   = errors.New("schema validation failed")
	ErrServiceUnavailable = errors.New("service unavailable")
)

// RemoteServiceError is a transport failure or a non-success HTTP status.
type RemoteServiceError struct {
	Service    string
	StatusCode int
	Body       string
	Err        error
}

func (e *RemoteServiceError) Error() string {
	switch {
	case e.StatusCode > 0 && e.Body != "":
		return fmt.Sprintf("%s: status %d: %s", e.Service, e.StatusCode, e.Body)
	case e.StatusCode > 0:
		return fmt.Sprintf("%s: status %d", e.Service, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s: request failed: %v", e.Service, e.Err)
	}
	return e.Service + ": request failed"
}

func (e *RemoteServiceError) Unwrap() error { return e.Err }

func (e *RemoteServiceError) Is(target error) bool {
	if target == ErrRemoteService {
		return true
	}
	_, ok := target.(*RemoteServiceError)
	return ok
}

func NewRemoteServiceError(service string, statusCode int, body string, err error) *RemoteServiceError {
	return &RemoteServiceError{Service: service, StatusCode: statusCode, Body: body, Err: err}
}

// MalformedResponseError means the response envelope did not have the expected shape.
type MalformedResponseError struct {
	Service string
	Reason  string
	Err     error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: malformed response: %s: %v", e.Service, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: malformed response: %s", e.Service, e.Reason)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

func (e *MalformedResponseError) Is(target error) bool {
	if target == ErrMalformedResponse {
		return true
	}
	_, ok := target.(*MalformedResponseError)
	return ok
}

func NewMalformedResponseError(service, reason string, err error) *MalformedResponseError {
	return &MalformedResponseError{Service: service, Reason: reason, Err: err}
}

// SchemaValidationError carries the first path that did not conform.
type SchemaValidationError struct {
	Path   string
	Reason string
}

func (e *SchemaValidationError) Error() string {
	if e.Path == "" {
		return e.Reason
	}
	return e.Path + ": " + e.Reason
}

func (e *SchemaValidationError) Is(target error) bool {
	if target == ErrSchemaValidation {
		return true
	}
	_, ok := target.(*SchemaValidationError)
	return ok
}

func NewSchemaValidationError(path, reason string) *SchemaValidationError {
	return &SchemaValidationError{Path: path, Reason: reason}
}

// ServiceUnavailableError is returned when a health check fails.
type ServiceUnavailableError struct {
	Endpoint string
	Err      error
}

func (e *ServiceUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("service unavailable at %s: %v", e.Endpoint, e.Err)
	}
	return "service unavailable at " + e.Endpoint
}

func (e *ServiceUnavailableError) Unwrap() error { return e.Err }

func (e *ServiceUnavailableError) Is(target error) bool {
	if target == ErrServiceUnavailable {
		return true
	}
	_, ok := target.(*ServiceUnavailableError)
	return ok
}

func NewServiceUnavailableError(endpoint string, err error) *ServiceUnavailableError {
	return &ServiceUnavailableError{Endpoint: endpoint, Err: err}
}

// IsRemote reports whether err came from the remote side (transport, status or envelope).
func IsRemote(err error) bool {
	return errors.Is(err, ErrRemoteService) || errors.Is(err, ErrMalformedResponse)
}
