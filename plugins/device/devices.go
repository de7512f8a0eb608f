// Package device contains vehicle device definitions exposed to the home-automation platform.
package device

import (
	"context"
	"time"

	"github.com/go-home-io/vehicle/plugins/device/enums"
)

// IDevice defines generic vehicle device.
// Every mechanism-specific adapter implements it independently.
type IDevice interface {
	ID() string
	Name() string
	VehicleID() string
	Type() enums.DeviceType
	Class() enums.DeviceClass
	HasBattery() bool
	Update(ctx context.Context) error
	State() interface{}
}

// Spec contains information about the device polling.
type Spec struct {
	UpdatePeriod      time.Duration
	SupportedCommands []enums.Command
}
