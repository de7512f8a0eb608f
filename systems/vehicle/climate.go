package vehicle

import (
	"context"

	"github.com/go-home-io/vehicle/plugins/device"
	"github.com/go-home-io/vehicle/plugins/device/enums"
)

const (
	cmdClimateStart = "auto_conditioning_start"
	cmdClimateStop  = "auto_conditioning_stop"
)

// Climate represents vehicle HVAC system.
// Heated seats require it to be turned on.
type Climate struct {
	*vehicleDevice

	on    bool
	known bool
}

// NewClimate constructs HVAC adapter.
func NewClimate(ctor *ConstructDevice) *Climate {
	return &Climate{
		vehicleDevice: newVehicleDevice(ctor, enums.DevClimate, ""),
	}
}

// Update polls controller and refreshes cached status if poll is not stale.
func (c *Climate) Update(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	err := c.poll(ctx)
	c.refresh()
	return err
}

// On turns HVAC on.
func (c *Climate) On(ctx context.Context) error {
	return c.SetStatus(ctx, true)
}

// Off turns HVAC off.
func (c *Climate) Off(ctx context.Context) error {
	return c.SetStatus(ctx, false)
}

// IsHVACEnabled returns cached HVAC status and whether it's known.
func (c *Climate) IsHVACEnabled() (on bool, known bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.on, c.known
}

// SetStatus turns HVAC on or off unless it's already in requested state.
func (c *Climate) SetStatus(ctx context.Context, enabled bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.known && c.on == enabled {
		c.logger.Debug("Skipping command, HVAC is already in requested state", c.logFields()...)
		return nil
	}

	cmd := cmdClimateStop
	if enabled {
		cmd = cmdClimateStart
	}

	if c.command(ctx, cmd, nil) {
		c.on = enabled
		c.known = true
	}

	c.stampManualUpdate()
	return nil
}

// State returns platform representation of the HVAC.
func (c *Climate) State() interface{} {
	on, known := c.IsHVACEnabled()
	s := &device.ClimateState{}
	if known {
		s.On = &on
	}

	return s
}

// Makes sure HVAC is enabled, using latest poll data if it's not stale.
func (c *Climate) ensureEnabled(ctx context.Context) {
	c.mu.Lock()
	c.refresh()
	c.mu.Unlock()

	if on, _ := c.IsHVACEnabled(); on {
		return
	}

	c.logger.Debug("Enabling HVAC before changing seat heater", c.logFields()...)
	c.SetStatus(ctx, true) // nolint: errcheck
}

// Re-reads cached status from the controller snapshot.
func (c *Climate) refresh() {
	if !c.isFresh() {
		return
	}

	c.on, c.known = ClimateFromState(c.controller.GetClimateParams(c.vehicle.ID))
}
