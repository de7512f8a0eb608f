package utils

import "fmt"

// ErrInvalidConfig defines wrong configuration error.
type ErrInvalidConfig struct {
}

// Error formats output.
func (*ErrInvalidConfig) Error() string {
	return "config validation error"
}

// ErrInvalidGlob defines wrong glob pattern error.
type ErrInvalidGlob struct {
	Pattern string
}

// Error formats output.
func (e *ErrInvalidGlob) Error() string {
	return fmt.Sprintf("invalid glob pattern %s", e.Pattern)
}
