package server

import (
	"context"
	"time"

	"github.com/go-home-io/vehicle/mocks"
	"github.com/go-home-io/vehicle/plugins/common"
	pdevice "github.com/go-home-io/vehicle/plugins/device"
	"github.com/go-home-io/vehicle/plugins/device/enums"
	"github.com/go-home-io/vehicle/providers"
	"github.com/go-home-io/vehicle/systems/device"
	"github.com/go-home-io/vehicle/systems/fanout"
	"github.com/go-home-io/vehicle/systems/vehicle"
	"github.com/go-home-io/vehicle/utils"
	"github.com/gobwas/glob"
)

var testVehicle = &providers.VehicleInfo{ID: "1", VIN: "VIN1", DisplayName: "Car", State: "online"}

// Settings used by server tests.
type fakeSettings struct {
	logger     common.ILoggerProvider
	cron       providers.ICronProvider
	validator  providers.IValidatorProvider
	fanOut     providers.IInternalFanOutProvider
	controller providers.IController
}

func (f *fakeSettings) SystemLogger() common.ILoggerProvider { return f.logger }
func (f *fakeSettings) PluginLogger(system string, provider string) common.ILoggerProvider {
	return f.logger
}
func (f *fakeSettings) Cron() providers.ICronProvider             { return f.cron }
func (f *fakeSettings) Validator() providers.IValidatorProvider   { return f.validator }
func (f *fakeSettings) FanOut() providers.IInternalFanOutProvider { return f.fanOut }
func (f *fakeSettings) Controller() providers.IController         { return f.controller }
func (f *fakeSettings) ServerSettings() *providers.ServerSettings {
	return &providers.ServerSettings{Port: 18901}
}
func (f *fakeSettings) DevicesSettings() *providers.DevicesSettings {
	return &providers.DevicesSettings{PollInterval: 60}
}
func (f *fakeSettings) DeviceFilter() []glob.Glob { return nil }

// Test environment.
type testEnv struct {
	ctrl     *mocks.FakeController
	settings *fakeSettings
	wrappers []device.IDeviceWrapperProvider
	server   *VehicleServer
	cancel   context.CancelFunc
}

// Constructs server with door lock, HVAC and a left seat heater.
func getEnv() *testEnv {
	ctx, cancel := context.WithCancel(context.Background())
	ctrl := mocks.FakeNewController(true, testVehicle)
	ctrl.SetPoll(time.Unix(5, 0), map[string]interface{}{"locked": false}, nil,
		map[string]interface{}{"is_climate_on": true})

	s := &fakeSettings{
		logger:     mocks.FakeNewLogger(nil),
		cron:       mocks.FakeNewCron(),
		validator:  utils.NewValidator(mocks.FakeNewLogger(nil)),
		fanOut:     fanout.NewFanOut(ctx),
		controller: ctrl,
	}

	ctor := &vehicle.ConstructDevice{
		Controller: ctrl,
		Logger:     s.logger,
		Vehicle:    testVehicle,
		Clock:      func() time.Time { return time.Unix(10, 0) },
	}

	climate := vehicle.NewClimate(ctor)
	wrappers := make([]device.IDeviceWrapperProvider, 0)
	for _, d := range []pdevice.IDevice{vehicle.NewLock(ctor), climate,
		vehicle.NewHeatedSeat(ctor, climate, enums.SeatLeft)} {
		wrappers = append(wrappers, device.NewDeviceWrapper(&device.ConstructWrapper{
			Device:       d,
			Logger:       s.logger,
			Cron:         s.cron,
			Validator:    s.validator,
			FanOut:       s.fanOut,
			PollInterval: time.Minute,
		}))
	}

	srv, err := NewServer(s, wrappers)
	if err != nil {
		panic(err)
	}

	return &testEnv{
		ctrl:     ctrl,
		settings: s,
		wrappers: wrappers,
		server:   srv,
		cancel:   cancel,
	}
}
