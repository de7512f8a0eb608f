package vehicle

import "fmt"

// ErrInvalidHeatLevel defines unknown symbolic seat heater level.
type ErrInvalidHeatLevel struct {
	Level string
}

// Error formats output.
func (e *ErrInvalidHeatLevel) Error() string {
	return fmt.Sprintf("heat level %q is not one of Off, Low, Medium, High", e.Level)
}

// ErrUnknownSeat defines seat without known heater index.
type ErrUnknownSeat struct {
	Seat string
}

// Error formats output.
func (e *ErrUnknownSeat) Error() string {
	return fmt.Sprintf("seat %s has no heater", e.Seat)
}
