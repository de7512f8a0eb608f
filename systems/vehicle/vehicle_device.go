// Package vehicle contains adapters exposing vehicle mechanisms as stateful devices.
package vehicle

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-home-io/vehicle/plugins/common"
	"github.com/go-home-io/vehicle/plugins/device/enums"
	"github.com/go-home-io/vehicle/providers"
	"github.com/go-home-io/vehicle/utils"
)

// ConstructDevice has data required for a new vehicle device.
type ConstructDevice struct {
	Controller providers.IController
	Logger     common.ILoggerProvider
	Vehicle    *providers.VehicleInfo
	Clock      func() time.Time
}

// Identity and bookkeeping shared by every adapter.
// mu serializes polls and commands of a single adapter.
type vehicleDevice struct {
	mu sync.Mutex

	controller providers.IController
	logger     common.ILoggerProvider
	vehicle    *providers.VehicleInfo
	deviceType enums.DeviceType
	clock      func() time.Time

	id   string
	name string

	manualUpdateTime time.Time
}

// Constructs shared part of the device.
// Suffix is used for devices with more than one instance per vehicle.
func newVehicleDevice(ctor *ConstructDevice, deviceType enums.DeviceType, suffix string) *vehicleDevice {
	clock := ctor.Clock
	if nil == clock {
		clock = time.Now
	}

	d := &vehicleDevice{
		controller: ctor.Controller,
		logger:     ctor.Logger,
		vehicle:    ctor.Vehicle,
		deviceType: deviceType,
		clock:      clock,
	}

	d.name = fmt.Sprintf("%s %s", ctor.Vehicle.DisplayName, deviceType.HumanName())
	d.id = fmt.Sprintf("%s.%s", utils.NormalizeDeviceName(d.vehicleKey()),
		utils.NormalizeDeviceName(deviceType.HumanName()))
	if suffix != "" {
		d.name = fmt.Sprintf("%s %s", d.name, suffix)
		d.id = fmt.Sprintf("%s.%s", d.id, utils.NormalizeDeviceName(suffix))
	}

	return d
}

// ID returns unique device ID.
func (d *vehicleDevice) ID() string {
	return d.id
}

// Name returns human readable device name.
func (d *vehicleDevice) Name() string {
	return d.name
}

// VehicleID returns ID of the vehicle used by remote API.
func (d *vehicleDevice) VehicleID() string {
	return d.vehicle.ID
}

// Type returns device type.
func (d *vehicleDevice) Type() enums.DeviceType {
	return d.deviceType
}

// Class returns platform classification.
func (d *vehicleDevice) Class() enums.DeviceClass {
	return d.deviceType.Class()
}

// HasBattery returns whether the device has a battery.
func (d *vehicleDevice) HasBattery() bool {
	return false
}

// Returns VIN, falls back to API ID.
func (d *vehicleDevice) vehicleKey() string {
	if d.vehicle.VIN != "" {
		return d.vehicle.VIN
	}

	return d.vehicle.ID
}

// Asks controller for a fresh poll.
func (d *vehicleDevice) poll(ctx context.Context) error {
	_, err := d.controller.Update(ctx, d.vehicle.ID, false, false)
	if err != nil {
		d.logger.Error("Failed to update vehicle data", err, d.logFields()...)
	}

	return err
}

// Checks whether last controller poll happened at or after last manual update.
func (d *vehicleDevice) isFresh() bool {
	return !d.controller.GetLastUpdateTime(d.vehicle.ID).Before(d.manualUpdateTime)
}

// Records time of the last issued command.
func (d *vehicleDevice) stampManualUpdate() {
	d.manualUpdateTime = d.clock()
}

// Sends remote command and checks whether it was confirmed.
func (d *vehicleDevice) command(ctx context.Context, name string, data map[string]interface{}) bool {
	fields := append(d.logFields(), common.LogRemoteCommandToken, name)
	d.logger.Debug("Sending vehicle command", fields...)

	resp, err := d.controller.Command(ctx, d.vehicle.ID, name, data, true)
	if err != nil {
		d.logger.Error("Vehicle command failed", err, fields...)
		return false
	}

	if !resp.IsSuccess() {
		reason := "no response"
		if resp != nil && resp.Response != nil {
			reason = resp.Response.Reason
		}
		d.logger.Warn("Vehicle rejected command", append(fields, "reason", reason)...)
		return false
	}

	return true
}

// Common log fields.
func (d *vehicleDevice) logFields() []string {
	return []string{common.LogDeviceTypeToken, d.deviceType.String(),
		common.LogDeviceNameToken, d.id, common.LogVehicleToken, d.vehicle.ID}
}
