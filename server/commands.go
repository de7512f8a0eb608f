package server

import (
	"context"
	"encoding/json"

	"github.com/go-home-io/vehicle/plugins/common"
	"github.com/go-home-io/vehicle/plugins/device/enums"
	"github.com/go-home-io/vehicle/systems/device"
)

// Invokes device command.
func (s *VehicleServer) commandInvokeDeviceCommand(ctx context.Context, deviceID string, opName string,
	data []byte) error {
	wrapper := s.state.GetWrapper(deviceID)
	if nil == wrapper {
		s.Logger.Warn("Failed to find device", common.LogSystemToken, logSystem,
			common.LogDeviceNameToken, deviceID)
		return &ErrUnknownDevice{ID: deviceID}
	}

	command, err := enums.CommandString(opName)
	if err != nil {
		s.Logger.Warn("Received unknown command", common.LogSystemToken, logSystem,
			common.LogDeviceNameToken, deviceID, common.LogDeviceCommandToken, opName)
		return &ErrUnknownCommand{Name: opName}
	}

	known := s.state.GetDevice(deviceID)
	if nil != known && !known.IsCommandSupported(command) {
		s.Logger.Warn("Device doesn't support this command", common.LogSystemToken, logSystem,
			common.LogDeviceNameToken, deviceID, common.LogDeviceCommandToken, opName)
		return &device.ErrUnsupportedCommand{Command: opName}
	}

	inputData := make(map[string]interface{})
	if len(data) > 0 {
		err := json.Unmarshal(data, &inputData)
		if err != nil {
			s.Logger.Error("Failed to unmarshal input request", err,
				common.LogSystemToken, logSystem)
			return &ErrBadRequest{}
		}
	}

	return wrapper.InvokeCommand(ctx, command, inputData)
}
