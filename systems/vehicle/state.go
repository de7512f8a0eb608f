package vehicle

import (
	"github.com/go-home-io/vehicle/plugins/device/enums"
)

const (
	// Vehicle state field with door locks status.
	fieldLocked = "locked"
	// Charge state field with charger port door status.
	fieldChargePortDoorOpen = "charge_port_door_open"
	// Charge state field with charger latch status.
	fieldChargePortLatch = "charge_port_latch"
	// Climate state field with HVAC status.
	fieldClimateOn = "is_climate_on"

	// Latch value reported for engaged charger latch.
	latchEngaged = "Engaged"
)

// LockStatusFromVehicleState derives door locks status from vehicle state snapshot.
func LockStatusFromVehicleState(data map[string]interface{}) enums.LockStatus {
	if nil == data {
		return enums.LockUnknown
	}

	locked, ok := data[fieldLocked].(bool)
	if !ok {
		return enums.LockUnknown
	}

	return enums.LockStatusFromBool(locked)
}

// LockStatusFromChargeState derives charger port status from charge state snapshot.
// Port is locked when the door is closed or the latch is engaged.
func LockStatusFromChargeState(data map[string]interface{}) enums.LockStatus {
	if nil == data {
		return enums.LockUnknown
	}

	doorOpen, ok := data[fieldChargePortDoorOpen].(bool)
	if !ok {
		return enums.LockUnknown
	}

	latch, _ := data[fieldChargePortLatch].(string)
	return enums.LockStatusFromBool(!(doorOpen && latch != latchEngaged))
}

// ClimateFromState derives HVAC status from climate state snapshot.
func ClimateFromState(data map[string]interface{}) (on bool, known bool) {
	if nil == data {
		return false, false
	}

	on, known = data[fieldClimateOn].(bool)
	return on, known
}

// AnySeatHeaterOn checks whether any seat heater is on.
// Missing per-seat fields are treated as turned off.
func AnySeatHeaterOn(data map[string]interface{}) (on bool, known bool) {
	if nil == data {
		return false, false
	}

	for _, v := range enums.AllSeats() {
		if isTruthy(data[v.StateField()]) {
			return true, true
		}
	}

	return false, true
}

// SeatHeatLevel derives single seat heater level from climate state snapshot.
func SeatHeatLevel(data map[string]interface{}, seat enums.SeatPosition) enums.HeatLevel {
	if nil == data {
		return enums.HeatUnknown
	}

	switch v := data[seat.StateField()].(type) {
	case float64:
		if v != float64(int(v)) {
			return enums.HeatUnknown
		}
		l, _ := enums.HeatLevelFromCode(int(v))
		return l
	case int:
		l, _ := enums.HeatLevelFromCode(v)
		return l
	case bool:
		if !v {
			return enums.HeatOff
		}
	}

	return enums.HeatUnknown
}

// Checks whether snapshot value is a set flag or non-zero level.
func isTruthy(val interface{}) bool {
	switch v := val.(type) {
	case bool:
		return v
	case float64:
		return v != 0
	case int:
		return v != 0
	}

	return false
}
