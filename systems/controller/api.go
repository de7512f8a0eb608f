package controller

import (
	"context"

	"github.com/go-home-io/vehicle/providers"
)

// IVehicleAPI defines transport used by the controller.
type IVehicleAPI interface {
	ListVehicles(ctx context.Context) ([]*providers.VehicleInfo, error)
	VehicleData(ctx context.Context, vehicleID string) (*VehicleData, error)
	WakeUp(ctx context.Context, vehicleID string) (string, error)
	Command(ctx context.Context, vehicleID string, name string,
		data map[string]interface{}) (*providers.CommandResponse, error)
}

// VehicleData has sections of a single poll.
// Nil section means vehicle didn't report it.
type VehicleData struct {
	State    map[string]interface{}
	Charging map[string]interface{}
	Climate  map[string]interface{}
}
