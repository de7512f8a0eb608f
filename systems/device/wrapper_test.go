package device

import (
	"context"
	"testing"
	"time"

	"github.com/go-home-io/vehicle/mocks"
	"github.com/go-home-io/vehicle/plugins/common"
	"github.com/go-home-io/vehicle/plugins/device"
	"github.com/go-home-io/vehicle/plugins/device/enums"
	"github.com/go-home-io/vehicle/providers"
	"github.com/go-home-io/vehicle/systems/vehicle"
	"github.com/go-home-io/vehicle/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testVehicle = &providers.VehicleInfo{ID: "1", VIN: "VIN1", DisplayName: "Car", State: "online"}

type fakeCron interface {
	providers.ICronProvider
	Run()
	Scheduled() int
	Specs() []string
}

func getDeviceCtor(ctrl *mocks.FakeController) *vehicle.ConstructDevice {
	return &vehicle.ConstructDevice{
		Controller: ctrl,
		Logger:     mocks.FakeNewLogger(nil),
		Vehicle:    testVehicle,
		Clock:      func() time.Time { return time.Unix(10, 0) },
	}
}

func getWrapper(d device.IDevice, realValidator bool) (IDeviceWrapperProvider, fakeCron,
	providers.IInternalFanOutProvider) {
	cron := mocks.FakeNewCron()
	fanOut := mocks.FakeNewFanOut()
	validator := mocks.FakeNewValidator(true)
	if realValidator {
		validator = utils.NewValidator(mocks.FakeNewLogger(nil))
	}

	w := NewDeviceWrapper(&ConstructWrapper{
		Device:       d,
		Logger:       mocks.FakeNewLogger(nil),
		Cron:         cron,
		Validator:    validator,
		FanOut:       fanOut,
		PollInterval: time.Second,
	})

	return w, cron, fanOut
}

// Reads next published message, if any.
func nextMessage(fanOut providers.IInternalFanOutProvider) *common.MsgDeviceUpdate {
	select {
	case msg := <-fanOut.ChannelInDeviceUpdates():
		return msg
	default:
		return nil
	}
}

// Tests supported commands.
func TestWrapperCommands(t *testing.T) {
	ctrl := mocks.FakeNewController(true, testVehicle)
	ctor := getDeviceCtor(ctrl)
	climate := vehicle.NewClimate(ctor)

	data := []struct {
		device   device.IDevice
		commands []string
	}{
		{vehicle.NewLock(ctor), []string{"lock", "unlock"}},
		{vehicle.NewChargerLock(ctor), []string{"lock", "unlock"}},
		{climate, []string{"on", "off"}},
		{vehicle.NewHeatedSeat(ctor, climate, enums.SeatLeft), []string{"set-level"}},
	}

	for _, v := range data {
		w, cron, _ := getWrapper(v.device, false)
		assert.Equal(t, v.commands, w.Commands(), v.device.ID())
		assert.Equal(t, v.device.ID(), w.ID())
		assert.Equal(t, 1, cron.Scheduled(), v.device.ID())
	}
}

// Tests that polling schedule follows configured interval.
func TestWrapperSchedule(t *testing.T) {
	ctrl := mocks.FakeNewController(true, testVehicle)
	data := []struct {
		interval time.Duration
		spec     string
	}{
		{time.Second, "@every 10s"},
		{0, "@every 10s"},
		{90 * time.Second, "@every 90s"},
	}

	for _, v := range data {
		cron := mocks.FakeNewCron()
		NewDeviceWrapper(&ConstructWrapper{
			Device:       vehicle.NewLock(getDeviceCtor(ctrl)),
			Logger:       mocks.FakeNewLogger(nil),
			Cron:         cron,
			Validator:    mocks.FakeNewValidator(true),
			FanOut:       mocks.FakeNewFanOut(),
			PollInterval: v.interval,
		})

		assert.Equal(t, []string{v.spec}, cron.Specs(), v.spec)
	}
}

// Tests that only changed state is published.
func TestWrapperRefresh(t *testing.T) {
	ctrl := mocks.FakeNewController(true, testVehicle)
	ctrl.SetPoll(time.Unix(5, 0), map[string]interface{}{"locked": true}, nil, nil)
	w, cron, fanOut := getWrapper(vehicle.NewLock(getDeviceCtor(ctrl)), false)

	cron.Run()
	msg := nextMessage(fanOut)
	require.NotNil(t, msg)
	assert.True(t, msg.FirstSeen)
	assert.Equal(t, "vin1.door_lock", msg.ID)
	assert.Equal(t, "Car door lock", msg.Name)
	assert.Equal(t, "1", msg.VehicleID)
	assert.Equal(t, enums.DevLock, msg.Type)
	assert.Equal(t, enums.ClassLock, msg.Class)
	assert.Equal(t, enums.LockEngaged, msg.State.(*device.LockState).Status)

	cron.Run()
	assert.Nil(t, nextMessage(fanOut), "state didn't change")

	ctrl.SetPoll(time.Unix(6, 0), map[string]interface{}{"locked": false}, nil, nil)
	cron.Run()
	msg = nextMessage(fanOut)
	require.NotNil(t, msg)
	assert.False(t, msg.FirstSeen)
	assert.Equal(t, enums.LockDisengaged, msg.State.(*device.LockState).Status)

	assert.Equal(t, enums.LockDisengaged, w.GetUpdateMessage().State.(*device.LockState).Status)
	assert.Equal(t, 3, ctrl.Updates())
}

// Tests lock commands.
func TestWrapperInvokeLock(t *testing.T) {
	ctrl := mocks.FakeNewController(true, testVehicle)
	ctrl.SetPoll(time.Unix(5, 0), map[string]interface{}{"locked": false}, nil, nil)
	w, cron, fanOut := getWrapper(vehicle.NewLock(getDeviceCtor(ctrl)), false)
	cron.Run()
	nextMessage(fanOut)

	require.NoError(t, w.InvokeCommand(context.Background(), enums.CmdLock, nil))
	msg := nextMessage(fanOut)
	require.NotNil(t, msg)
	assert.Equal(t, enums.LockEngaged, msg.State.(*device.LockState).Status)

	cmds := ctrl.Commands()
	require.Equal(t, 1, len(cmds))
	assert.Equal(t, "door_lock", cmds[0].Name)

	err := w.InvokeCommand(context.Background(), enums.CmdSetLevel, nil)
	_, ok := err.(*ErrUnsupportedCommand)
	assert.True(t, ok)
}

// Tests set-level params handling.
func TestWrapperInvokeSetLevel(t *testing.T) {
	ctrl := mocks.FakeNewController(true, testVehicle)
	ctrl.SetPoll(time.Unix(5, 0), nil, nil, map[string]interface{}{"is_climate_on": true})
	ctor := getDeviceCtor(ctrl)
	seat := vehicle.NewHeatedSeat(ctor, vehicle.NewClimate(ctor), enums.SeatRearLeft)
	w, _, fanOut := getWrapper(seat, true)

	data := []map[string]interface{}{
		nil,
		{"value": "Max"},
		{"value": 3},
	}

	for _, v := range data {
		err := w.InvokeCommand(context.Background(), enums.CmdSetLevel, v)
		_, ok := err.(*ErrInvalidParams)
		assert.True(t, ok, "%v", v)
	}

	assert.Equal(t, 0, len(ctrl.Commands()))

	require.NoError(t, w.InvokeCommand(context.Background(), enums.CmdSetLevel,
		map[string]interface{}{"value": "Medium"}))
	cmds := ctrl.Commands()
	require.Equal(t, 1, len(cmds))
	assert.Equal(t, map[string]interface{}{"heater": 2, "level": 2}, cmds[0].Data)

	msg := nextMessage(fanOut)
	require.NotNil(t, msg)
	assert.Equal(t, enums.HeatMedium, msg.State.(*device.HeatedSeatState).Level)
}

// Tests errors returned by the device.
func TestWrapperDeviceError(t *testing.T) {
	ctrl := mocks.FakeNewController(true, testVehicle)
	ctor := getDeviceCtor(ctrl)
	seat := vehicle.NewHeatedSeat(ctor, vehicle.NewClimate(ctor), enums.SeatLeft)
	w, _, _ := getWrapper(seat, false)

	err := w.InvokeCommand(context.Background(), enums.CmdSetLevel, map[string]interface{}{"value": "Max"})
	_, ok := err.(*vehicle.ErrInvalidHeatLevel)
	assert.True(t, ok)
}

// Tests unload.
func TestWrapperUnload(t *testing.T) {
	ctrl := mocks.FakeNewController(true, testVehicle)
	w, cron, fanOut := getWrapper(vehicle.NewClimate(getDeviceCtor(ctrl)), false)

	w.Unload()
	assert.Equal(t, 0, cron.Scheduled())

	w.Refresh()
	assert.Nil(t, nextMessage(fanOut))
	assert.Equal(t, 0, ctrl.Updates())
}
