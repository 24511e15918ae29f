package predict

import (
	"errors"
	"fmt"
)

// Sentinels matched by the typed errors below through errors.Is.
var (
	ErrNetwork  = errors.New("classifier unreachable")
	ErrService  = errors.New("classifier returned an error")
	ErrProtocol = errors.New("unexpected classifier response")
)

// NetworkError means the request never reached the classifier or no
// response came back (refused connection, DNS failure, timeout).
type NetworkError struct {
	Endpoint string
	Cause    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.Endpoint, e.Cause)
}

func (e *NetworkError) Unwrap() error { return e.Cause }

func (e *NetworkError) Is(target error) bool { return target == ErrNetwork }

// ServiceError means the classifier answered with a non-2xx status.
type ServiceError struct {
	StatusCode int
	Detail     string // server-supplied "details", may be empty
}

// Error prefers the server detail and falls back to the status code.
func (e *ServiceError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("Server returned status %d", e.StatusCode)
}

func (e *ServiceError) Is(target error) bool { return target == ErrService }

// ProtocolError means a 2xx response whose body did not match the contract.
type ProtocolError struct {
	Reason string
	Body   string // truncated raw body
}

func (e *ProtocolError) Error() string {
	if e.Body == "" {
		return "malformed response: " + e.Reason
	}
	return fmt.Sprintf("malformed response: %s (body: %s)", e.Reason, e.Body)
}

func (e *ProtocolError) Is(target error) bool { return target == ErrProtocol }
