package controller

import "fmt"

// ErrUnknownVehicle defines unknown vehicle error.
type ErrUnknownVehicle struct {
	ID string
}

// Error formats output.
func (e *ErrUnknownVehicle) Error() string {
	return fmt.Sprintf("vehicle %s is unknown", e.ID)
}

// ErrBadStatus defines unexpected HTTP status returned by remote API.
type ErrBadStatus struct {
	URL  string
	Code int
}

// Error formats output.
func (e *ErrBadStatus) Error() string {
	return fmt.Sprintf("%s returned status %d", e.URL, e.Code)
}

// ErrMalformedResponse defines response which doesn't follow the expected envelope.
type ErrMalformedResponse struct {
	URL string
}

// Error formats output.
func (e *ErrMalformedResponse) Error() string {
	return fmt.Sprintf("%s returned malformed response", e.URL)
}
