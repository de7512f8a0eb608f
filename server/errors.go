package server

import "fmt"

// ErrUnknownDevice defines unknown device error.
type ErrUnknownDevice struct {
	ID string
}

// Error formats output.
func (e *ErrUnknownDevice) Error() string {
	return fmt.Sprintf("device %s is unknown", e.ID)
}

// ErrUnknownCommand defines unknown command error.
type ErrUnknownCommand struct {
	Name string
}

// Error formats output.
func (e *ErrUnknownCommand) Error() string {
	return fmt.Sprintf("command %s is unknown", e.Name)
}

// ErrBadRequest defines generic server error.
type ErrBadRequest struct {
}

// Error formats output.
func (e *ErrBadRequest) Error() string {
	return "bad request"
}

// ErrNoDevices defines empty devices list error.
type ErrNoDevices struct {
}

// Error formats output.
func (*ErrNoDevices) Error() string {
	return "no devices were discovered"
}
