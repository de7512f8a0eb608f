package common

import (
	"github.com/go-home-io/vehicle/plugins/device/enums"
)

// ILoggerProvider defines logger provider which will be passed to every component.
type ILoggerProvider interface {
	Debug(msg string, fields ...string)
	Info(msg string, fields ...string)
	Warn(msg string, fields ...string)
	Error(msg string, err error, fields ...string)
	Fatal(msg string, err error, fields ...string)
}

// MsgDeviceUpdate contains data with updated state of the device.
type MsgDeviceUpdate struct {
	ID        string
	Name      string
	VehicleID string
	State     interface{}
	FirstSeen bool
	Type      enums.DeviceType
	Class     enums.DeviceClass
	Commands  []string
}

// IFanOutProvider defines interface used for distributing
// device updates even across all system.
type IFanOutProvider interface {
	SubscribeDeviceUpdates() (int64, chan *MsgDeviceUpdate)
	UnSubscribeDeviceUpdates(int64)
}
