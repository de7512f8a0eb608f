//go:build !release
// +build !release

package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/go-home-io/vehicle/providers"
)

// FakeCommand records a single command sent through the fake controller.
type FakeCommand struct {
	VehicleID    string
	Name         string
	Data         map[string]interface{}
	WakeIfAsleep bool
}

// FakeController is a scripted command dispatcher.
type FakeController struct {
	sync.Mutex

	vehicles       []*providers.VehicleInfo
	lastUpdate     time.Time
	stateParams    map[string]interface{}
	chargingParams map[string]interface{}
	climateParams  map[string]interface{}

	defaultResult bool
	responses     map[string]*providers.CommandResponse
	commandErr    error
	updateErr     error

	commands []*FakeCommand
	updates  int

	// OnCommand is invoked after recording every command.
	OnCommand func(cmd *FakeCommand)
}

// FakeNewController creates a fake controller.
// Every command succeeds if defaultResult is true.
func FakeNewController(defaultResult bool, vehicles ...*providers.VehicleInfo) *FakeController {
	return &FakeController{
		vehicles:      vehicles,
		defaultResult: defaultResult,
		responses:     make(map[string]*providers.CommandResponse),
	}
}

// Vehicles returns configured vehicles.
func (f *FakeController) Vehicles() []*providers.VehicleInfo {
	return f.vehicles
}

// Update counts update requests.
func (f *FakeController) Update(ctx context.Context, vehicleID string, wakeIfAsleep bool, force bool) (bool, error) {
	f.Lock()
	defer f.Unlock()
	f.updates++
	return f.updateErr == nil, f.updateErr
}

// GetLastUpdateTime returns scripted poll time.
func (f *FakeController) GetLastUpdateTime(vehicleID string) time.Time {
	f.Lock()
	defer f.Unlock()
	return f.lastUpdate
}

// GetStateParams returns scripted vehicle state.
func (f *FakeController) GetStateParams(vehicleID string) map[string]interface{} {
	f.Lock()
	defer f.Unlock()
	return f.stateParams
}

// GetChargingParams returns scripted charge state.
func (f *FakeController) GetChargingParams(vehicleID string) map[string]interface{} {
	f.Lock()
	defer f.Unlock()
	return f.chargingParams
}

// GetClimateParams returns scripted climate state.
func (f *FakeController) GetClimateParams(vehicleID string) map[string]interface{} {
	f.Lock()
	defer f.Unlock()
	return f.climateParams
}

// Command records the command and returns scripted response.
func (f *FakeController) Command(ctx context.Context, vehicleID string, name string, data map[string]interface{},
	wakeIfAsleep bool) (*providers.CommandResponse, error) {
	cmd := &FakeCommand{
		VehicleID:    vehicleID,
		Name:         name,
		Data:         data,
		WakeIfAsleep: wakeIfAsleep,
	}

	f.Lock()
	f.commands = append(f.commands, cmd)
	err := f.commandErr
	resp, ok := f.responses[name]
	if !ok {
		resp = &providers.CommandResponse{Response: &providers.CommandResult{Result: f.defaultResult}}
	}
	callback := f.OnCommand
	f.Unlock()

	if callback != nil {
		callback(cmd)
	}

	if err != nil {
		return nil, err
	}

	return resp, nil
}

// SetPoll sets poll snapshot sections and their time.
// Nil section means snapshot is unavailable.
func (f *FakeController) SetPoll(at time.Time, state, charging, climate map[string]interface{}) {
	f.Lock()
	defer f.Unlock()
	f.lastUpdate = at
	f.stateParams = state
	f.chargingParams = charging
	f.climateParams = climate
}

// SetResponse scripts response for the command. Nil response emulates missing data.
func (f *FakeController) SetResponse(name string, resp *providers.CommandResponse) {
	f.Lock()
	defer f.Unlock()
	f.responses[name] = resp
}

// SetCommandError scripts transport error for every command.
func (f *FakeController) SetCommandError(err error) {
	f.Lock()
	defer f.Unlock()
	f.commandErr = err
}

// SetUpdateError scripts update error.
func (f *FakeController) SetUpdateError(err error) {
	f.Lock()
	defer f.Unlock()
	f.updateErr = err
}

// Commands returns all recorded commands.
func (f *FakeController) Commands() []*FakeCommand {
	f.Lock()
	defer f.Unlock()
	result := make([]*FakeCommand, len(f.commands))
	copy(result, f.commands)
	return result
}

// Updates returns number of update requests.
func (f *FakeController) Updates() int {
	f.Lock()
	defer f.Unlock()
	return f.updates
}
