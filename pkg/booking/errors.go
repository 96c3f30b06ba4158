package booking

import "fmt"

// NetworkError wraps a transport-level failure: no connectivity, DNS, timeout.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("booking: network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError is a non-2xx response that carried no business error code.
type ServerError struct {
	Status int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("booking: server error: status %d", e.Status)
}

// ValidationError is a business rejection from the backend, e.g. the slot was
// already taken by the time the booking landed.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("booking: validation error: %s", e.Code)
}
