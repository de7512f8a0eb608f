package device

import (
	"context"

	"github.com/go-home-io/vehicle/plugins/device/enums"
)

// IHeatedSeat defines seat heater interface.
type IHeatedSeat interface {
	IDevice
	Seat() enums.SeatPosition
	SetLevel(ctx context.Context, level enums.HeatLevel) error
	SetValue(ctx context.Context, level string) error
	GetValue() (on bool, known bool)
	Level() enums.HeatLevel
}

// HeatedSeatState returns information about known seat heater.
// AnyOn reflects whether any seat heater of the vehicle is on.
type HeatedSeatState struct {
	Seat  string          `json:"seat"`
	Level enums.HeatLevel `json:"level"`
	AnyOn *bool           `json:"any_on"`
}
