package vehicle

import (
	"context"

	"github.com/go-home-io/vehicle/plugins/device"
	"github.com/go-home-io/vehicle/plugins/device/enums"
	"github.com/go-home-io/vehicle/providers"
)

const (
	cmdDoorLock            = "door_lock"
	cmdDoorUnlock          = "door_unlock"
	cmdChargePortDoorClose = "charge_port_door_close"
	cmdChargePortDoorOpen  = "charge_port_door_open"
)

// Two-state mechanism template.
// Commands are sent only if cached status differs from the target one.
type binaryLock struct {
	*vehicleDevice

	status       enums.LockStatus
	engageCmd    string
	disengageCmd string
	derive       func(c providers.IController, vehicleID string) enums.LockStatus
}

// Lock represents vehicle door locks.
type Lock struct {
	binaryLock
}

// ChargerLock represents vehicle charger port door.
type ChargerLock struct {
	binaryLock
}

// NewLock constructs door locks adapter.
func NewLock(ctor *ConstructDevice) *Lock {
	return &Lock{
		binaryLock: binaryLock{
			vehicleDevice: newVehicleDevice(ctor, enums.DevLock, ""),
			status:        enums.LockUnknown,
			engageCmd:     cmdDoorLock,
			disengageCmd:  cmdDoorUnlock,
			derive: func(c providers.IController, vehicleID string) enums.LockStatus {
				return LockStatusFromVehicleState(c.GetStateParams(vehicleID))
			},
		},
	}
}

// NewChargerLock constructs charger port door adapter.
func NewChargerLock(ctor *ConstructDevice) *ChargerLock {
	return &ChargerLock{
		binaryLock: binaryLock{
			vehicleDevice: newVehicleDevice(ctor, enums.DevChargerLock, ""),
			status:        enums.LockUnknown,
			engageCmd:     cmdChargePortDoorClose,
			disengageCmd:  cmdChargePortDoorOpen,
			derive: func(c providers.IController, vehicleID string) enums.LockStatus {
				return LockStatusFromChargeState(c.GetChargingParams(vehicleID))
			},
		},
	}
}

// Update polls controller and refreshes cached status if poll is not stale.
func (l *binaryLock) Update(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	err := l.poll(ctx)
	if l.isFresh() {
		l.status = l.derive(l.controller, l.vehicle.ID)
	}

	return err
}

// Lock engages the mechanism.
func (l *binaryLock) Lock(ctx context.Context) error {
	return l.setStatus(ctx, enums.LockEngaged, l.engageCmd)
}

// Unlock disengages the mechanism.
func (l *binaryLock) Unlock(ctx context.Context) error {
	return l.setStatus(ctx, enums.LockDisengaged, l.disengageCmd)
}

// IsLocked returns cached status and whether it's known.
func (l *binaryLock) IsLocked() (locked bool, known bool) {
	return l.Status().Bool()
}

// Status returns cached tri-state status.
func (l *binaryLock) Status() enums.LockStatus {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.status
}

// State returns platform representation of the lock.
func (l *binaryLock) State() interface{} {
	status := l.Status()
	s := &device.LockState{Status: status}
	if locked, known := status.Bool(); known {
		s.Locked = &locked
	}

	return s
}

// Sends command if required and updates cached status on confirmed success.
// Manual update time is stamped even if command failed.
func (l *binaryLock) setStatus(ctx context.Context, target enums.LockStatus, cmd string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.status == target {
		l.logger.Debug("Skipping command, mechanism is already in requested state", l.logFields()...)
		return nil
	}

	if l.command(ctx, cmd, nil) {
		l.status = target
	}

	l.stampManualUpdate()
	return nil
}
