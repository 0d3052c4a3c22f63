package wallconnector

import "fmt"

// TransportError wraps a network-level failure (refused connection,
// timeout, DNS) reaching the wall connector.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("contacting wall connector: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DeviceError is a non-200 response from the wall connector.
type DeviceError struct {
	Endpoint   string
	StatusCode int
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("wall connector returned HTTP %d from %s", e.StatusCode, e.Endpoint)
}

// DecodeError is a response body that does not match the endpoint's
// schema - usually a firmware/tool version mismatch, so the underlying
// cause is surfaced verbatim.
type DecodeError struct {
	Endpoint string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s response: %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
