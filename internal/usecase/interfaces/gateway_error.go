package interfaces

import (
	"errors"
	"net/http"
)

// ErrNotFound is matched (errors.Is) by gateway errors for missing resources.
var ErrNotFound = errors.New("resource not found")

// GatewayError is the single human-readable failure returned by a gateway
// when the backend answers with a non-2xx status or cannot be reached.
// Status is zero for transport failures.
type GatewayError struct {
	Status  int
	Message string
	Err     error
}

func (e *GatewayError) Error() string {
	return e.Message
}

func (e *GatewayError) Unwrap() error {
	if e.Status == http.StatusNotFound {
		return ErrNotFound
	}
	return e.Err
}
