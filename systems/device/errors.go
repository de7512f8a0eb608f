package device

import "fmt"

// ErrUnsupportedCommand defines command which device doesn't support.
type ErrUnsupportedCommand struct {
	Command string
}

// Error formats output.
func (e *ErrUnsupportedCommand) Error() string {
	return fmt.Sprintf("command %s is not supported", e.Command)
}

// ErrInvalidParams defines incorrect command params error.
type ErrInvalidParams struct {
}

// Error formats output.
func (*ErrInvalidParams) Error() string {
	return "invalid command params"
}
