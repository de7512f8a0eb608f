package device

import "context"

// IClimate defines vehicle HVAC interface.
type IClimate interface {
	IDevice
	On(ctx context.Context) error
	Off(ctx context.Context) error
	IsHVACEnabled() (on bool, known bool)
	SetStatus(ctx context.Context, enabled bool) error
}

// ClimateState returns information about known HVAC system.
type ClimateState struct {
	On *bool `json:"on"`
}
