package server

import (
	"github.com/go-home-io/vehicle/plugins/common"
	"github.com/go-home-io/vehicle/plugins/device/enums"
	"github.com/go-home-io/vehicle/plugins/helpers"
	"github.com/go-home-io/vehicle/utils"
)

// Known devices, reported by wrappers.
type knownDevice struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	VehicleID string            `json:"vehicle_id"`
	Type      enums.DeviceType  `json:"type"`
	Class     enums.DeviceClass `json:"class"`
	State     interface{}       `json:"state"`
	LastSeen  int64             `json:"last_seen"`
	Commands  []string          `json:"commands"`
}

// Constructs known device from the update message.
func newKnownDevice(msg *common.MsgDeviceUpdate) *knownDevice {
	return &knownDevice{
		ID:        msg.ID,
		Name:      msg.Name,
		VehicleID: msg.VehicleID,
		Type:      msg.Type,
		Class:     msg.Class,
		State:     msg.State,
		LastSeen:  utils.TimeNow(),
		Commands:  msg.Commands,
	}
}

// Checks whether device accepts the command.
func (d *knownDevice) IsCommandSupported(cmd enums.Command) bool {
	return helpers.SliceContainsString(d.Commands, cmd.String())
}
