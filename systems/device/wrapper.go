// Package device contains wrappers connecting vehicle devices to the platform.
package device

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/go-home-io/vehicle/plugins/common"
	"github.com/go-home-io/vehicle/plugins/device"
	"github.com/go-home-io/vehicle/plugins/device/enums"
	"github.com/go-home-io/vehicle/providers"
	"github.com/google/go-cmp/cmp"
)

// Minimal allowed polling rate.
const minPollInterval = 10 * time.Second

// IDeviceWrapperProvider interface for any loaded devices.
type IDeviceWrapperProvider interface {
	ID() string
	Device() device.IDevice
	Commands() []string
	Refresh()
	Unload()
	InvokeCommand(ctx context.Context, cmd enums.Command, params map[string]interface{}) error
	GetUpdateMessage() *common.MsgDeviceUpdate
}

// ConstructWrapper has data required for a new wrapper.
type ConstructWrapper struct {
	Device       device.IDevice
	Logger       common.ILoggerProvider
	Cron         providers.ICronProvider
	Validator    providers.IValidatorProvider
	FanOut       providers.IInternalFanOutProvider
	PollInterval time.Duration
}

// Single command handler.
type commandHandler func(ctx context.Context, params map[string]interface{}) error

// Device wrapper implementation.
type deviceWrapper struct {
	sync.Mutex

	Ctor *ConstructWrapper

	Spec        *device.Spec
	State       interface{}
	CommandsStr []string

	ctx       context.Context
	cancel    context.CancelFunc
	jobID     int
	commands  map[enums.Command]commandHandler
	published bool
}

// NewDeviceWrapper constructs a new device wrapper and schedules polling.
func NewDeviceWrapper(ctor *ConstructWrapper) IDeviceWrapperProvider {
	interval := ctor.PollInterval
	if interval < minPollInterval {
		interval = minPollInterval
	}

	w := &deviceWrapper{
		Ctor: ctor,
		Spec: &device.Spec{
			UpdatePeriod:      interval,
			SupportedCommands: enums.AllowedCommands(ctor.Device.Type()),
		},
	}

	w.ctx, w.cancel = context.WithCancel(context.Background())
	w.validateDeviceSpec()

	w.schedule()
	return w
}

// ID returns unique device ID.
func (w *deviceWrapper) ID() string {
	return w.Ctor.Device.ID()
}

// Device returns wrapped device.
func (w *deviceWrapper) Device() device.IDevice {
	return w.Ctor.Device
}

// Commands returns names of supported commands.
func (w *deviceWrapper) Commands() []string {
	return w.CommandsStr
}

// Unload stops all background activities.
func (w *deviceWrapper) Unload() {
	w.cancel()
	if 0 != w.jobID {
		w.Ctor.Cron.RemoveFunc(w.jobID)
	}
}

// Refresh polls the device and publishes its state if it changed.
func (w *deviceWrapper) Refresh() {
	w.Lock()
	defer w.Unlock()

	if w.ctx.Err() != nil {
		return
	}

	w.Ctor.Logger.Debug("Fetching update for the device", w.logFields()...)
	if err := w.Ctor.Device.Update(w.ctx); err != nil {
		w.Ctor.Logger.Error("Failed to fetch device updates", err, w.logFields()...)
	}

	w.processUpdate()
}

// InvokeCommand performs a call to the device.
// This method validates whether device actually supports this operation.
func (w *deviceWrapper) InvokeCommand(ctx context.Context, cmd enums.Command, params map[string]interface{}) error {
	w.Lock()
	defer w.Unlock()

	fields := append(w.logFields(), common.LogDeviceCommandToken, cmd.String())
	handler, ok := w.commands[cmd]
	if !ok {
		w.Ctor.Logger.Warn("Device doesn't support this command", fields...)
		return &ErrUnsupportedCommand{Command: cmd.String()}
	}

	w.Ctor.Logger.Debug("Invoking device command", fields...)
	if err := handler(ctx, params); err != nil {
		w.Ctor.Logger.Error("Got error while invoking device command", err, fields...)
		return err
	}

	w.processUpdate()
	return nil
}

// GetUpdateMessage constructs device update message.
func (w *deviceWrapper) GetUpdateMessage() *common.MsgDeviceUpdate {
	w.Lock()
	defer w.Unlock()
	return w.updateMessage()
}

// Registers periodic polling according to the device spec.
func (w *deviceWrapper) schedule() {
	seconds := int(w.Spec.UpdatePeriod / time.Second)
	var err error
	w.jobID, err = w.Ctor.Cron.AddFunc(fmt.Sprintf("@every %ds", seconds), w.Refresh)
	if err != nil {
		w.Ctor.Logger.Error("Failed to schedule device updates", err, w.logFields()...)
		return
	}

	w.Ctor.Logger.Debug(fmt.Sprintf("Polling rate for the device is %d seconds", seconds), w.logFields()...)
}

// Prepares supported commands.
// Commands are bound only if device implements required interface.
func (w *deviceWrapper) validateDeviceSpec() {
	w.CommandsStr = make([]string, 0)
	w.commands = make(map[enums.Command]commandHandler)
	for _, v := range w.Spec.SupportedCommands {
		handler := w.getHandler(v)
		if nil == handler {
			w.Ctor.Logger.Warn("Device doesn't implement allowed command",
				append(w.logFields(), common.LogDeviceCommandToken, v.String())...)
			continue
		}

		w.commands[v] = handler
		w.CommandsStr = append(w.CommandsStr, v.String())
	}
}

// Returns command handler or nil.
func (w *deviceWrapper) getHandler(cmd enums.Command) commandHandler {
	switch d := w.Ctor.Device.(type) {
	case device.ILock:
		switch cmd {
		case enums.CmdLock:
			return func(ctx context.Context, _ map[string]interface{}) error { return d.Lock(ctx) }
		case enums.CmdUnlock:
			return func(ctx context.Context, _ map[string]interface{}) error { return d.Unlock(ctx) }
		}
	case device.IClimate:
		switch cmd {
		case enums.CmdOn:
			return func(ctx context.Context, _ map[string]interface{}) error { return d.On(ctx) }
		case enums.CmdOff:
			return func(ctx context.Context, _ map[string]interface{}) error { return d.Off(ctx) }
		}
	case device.IHeatedSeat:
		if cmd == enums.CmdSetLevel {
			return func(ctx context.Context, params map[string]interface{}) error {
				level := &common.HeatLevel{}
				if err := w.parseParams(params, level); err != nil {
					return err
				}

				return d.SetValue(ctx, level.Value)
			}
		}
	}

	return nil
}

// Converts raw params into the expected structure and validates it.
func (w *deviceWrapper) parseParams(params map[string]interface{}, out interface{}) error {
	obj, err := json.Marshal(params)
	if err != nil {
		return &ErrInvalidParams{}
	}

	if err := json.Unmarshal(obj, out); err != nil {
		return &ErrInvalidParams{}
	}

	if !w.Ctor.Validator.Validate(out) {
		return &ErrInvalidParams{}
	}

	return nil
}

// Processing update from the device.
// Message is sent only if state has changed.
func (w *deviceWrapper) processUpdate() {
	state := w.Ctor.Device.State()
	if w.published && cmp.Equal(w.State, state) {
		return
	}

	w.Ctor.Logger.Debug("Device state changed", w.logFields()...)
	w.State = state
	msg := w.updateMessage()
	msg.FirstSeen = !w.published
	w.published = true

	w.Ctor.FanOut.ChannelInDeviceUpdates() <- msg
}

// Constructs update message.
func (w *deviceWrapper) updateMessage() *common.MsgDeviceUpdate {
	d := w.Ctor.Device
	return &common.MsgDeviceUpdate{
		ID:        d.ID(),
		Name:      d.Name(),
		VehicleID: d.VehicleID(),
		State:     w.State,
		Type:      d.Type(),
		Class:     d.Class(),
		Commands:  w.CommandsStr,
	}
}

// Common log fields.
func (w *deviceWrapper) logFields() []string {
	return []string{common.LogDeviceTypeToken, w.Ctor.Device.Type().String(),
		common.LogDeviceNameToken, w.Ctor.Device.ID()}
}
