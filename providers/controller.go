package providers

import (
	"context"
	"time"
)

// IController defines remote command dispatcher shared by all vehicle devices.
// It owns poll snapshots; devices only read them.
type IController interface {
	Vehicles() []*VehicleInfo
	Update(ctx context.Context, vehicleID string, wakeIfAsleep bool, force bool) (bool, error)
	GetLastUpdateTime(vehicleID string) time.Time
	GetStateParams(vehicleID string) map[string]interface{}
	GetChargingParams(vehicleID string) map[string]interface{}
	GetClimateParams(vehicleID string) map[string]interface{}
	Command(ctx context.Context, vehicleID string, name string, data map[string]interface{},
		wakeIfAsleep bool) (*CommandResponse, error)
}

// VehicleInfo has base data about the vehicle.
type VehicleInfo struct {
	ID          string `json:"id_s"`
	VIN         string `json:"vin"`
	DisplayName string `json:"display_name"`
	State       string `json:"state"`
}

// CommandResult is a result of a single remote command.
type CommandResult struct {
	Result bool   `json:"result"`
	Reason string `json:"reason"`
}

// CommandResponse is an envelope returned by the remote API.
type CommandResponse struct {
	Response *CommandResult `json:"response"`
}

// IsSuccess checks whether response structurally confirms success.
func (r *CommandResponse) IsSuccess() bool {
	return r != nil && r.Response != nil && r.Response.Result
}
