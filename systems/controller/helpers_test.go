package controller

import (
	"context"
	"sync"
	"time"

	"github.com/go-home-io/vehicle/mocks"
	"github.com/go-home-io/vehicle/providers"
)

// Scripted transport.
type fakeAPI struct {
	sync.Mutex

	vehicles   []*providers.VehicleInfo
	data       *VehicleData
	dataErr    error
	wakeState  string
	wakeErr    error
	resp       *providers.CommandResponse
	commandErr error

	listCalls int
	dataCalls int
	wakeCalls int
	commands  []string
}

func (f *fakeAPI) ListVehicles(ctx context.Context) ([]*providers.VehicleInfo, error) {
	f.Lock()
	defer f.Unlock()
	f.listCalls++
	result := make([]*providers.VehicleInfo, 0, len(f.vehicles))
	for _, v := range f.vehicles {
		c := *v
		result = append(result, &c)
	}

	return result, nil
}

func (f *fakeAPI) VehicleData(ctx context.Context, vehicleID string) (*VehicleData, error) {
	f.Lock()
	defer f.Unlock()
	f.dataCalls++
	if f.dataErr != nil {
		return nil, f.dataErr
	}

	return f.data, nil
}

func (f *fakeAPI) WakeUp(ctx context.Context, vehicleID string) (string, error) {
	f.Lock()
	defer f.Unlock()
	f.wakeCalls++
	return f.wakeState, f.wakeErr
}

func (f *fakeAPI) Command(ctx context.Context, vehicleID string, name string,
	data map[string]interface{}) (*providers.CommandResponse, error) {
	f.Lock()
	defer f.Unlock()
	f.commands = append(f.commands, name)
	return f.resp, f.commandErr
}

func (f *fakeAPI) setState(state string) {
	f.Lock()
	defer f.Unlock()
	f.vehicles[0].State = state
}

// Manually driven clock.
type fakeClock struct {
	sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.Lock()
	defer c.Unlock()
	return c.now
}

func (c *fakeClock) Add(d time.Duration) {
	c.Lock()
	defer c.Unlock()
	c.now = c.now.Add(d)
}

func getAPI(state string) *fakeAPI {
	return &fakeAPI{
		vehicles: []*providers.VehicleInfo{{ID: "1", VIN: "VIN1", DisplayName: "Car", State: state}},
		data: &VehicleData{
			State:    map[string]interface{}{"locked": true},
			Charging: map[string]interface{}{"charge_port_door_open": false},
			Climate:  map[string]interface{}{"is_climate_on": false},
		},
		wakeState: "online",
		resp:      &providers.CommandResponse{Response: &providers.CommandResult{Result: true}},
	}
}

func getController(api *fakeAPI, clock *fakeClock, ttl int) *controller {
	ctrl, err := NewController(context.Background(), &ConstructController{
		Settings: &providers.ControllerSettings{
			UpdateInterval: 300,
			SnapshotTTL:    ttl,
			Timeout:        1,
		},
		Logger: mocks.FakeNewLogger(nil),
		API:    api,
		Clock:  clock.Now,
	})
	if err != nil {
		panic(err)
	}

	return ctrl.(*controller)
}
