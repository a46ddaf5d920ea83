package rtt

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse is returned when RTT answers 2xx with a body that does not
// have the expected shape.
var ErrMalformedResponse = errors.New("malformed response")

// NetworkError is returned when no response was received from RTT.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("executing request: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// StatusError is returned when RTT answers with a non-2xx status code.
// Message is the "message" field of the response body, if there was one.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unexpected status code: %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status code: %d: %s", e.StatusCode, e.Message)
}
