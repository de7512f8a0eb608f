package server

import (
	"sort"
	"sync"

	"github.com/go-home-io/vehicle/plugins/common"
	"github.com/go-home-io/vehicle/systems/device"
)

// IServerStateProvider defines server state logic.
type IServerStateProvider interface {
	Update(msg *common.MsgDeviceUpdate)
	GetAllDevices() []*knownDevice
	GetDevice(deviceID string) *knownDevice
	GetWrapper(deviceID string) device.IDeviceWrapperProvider
}

// Server state implementation.
type serverState struct {
	sync.RWMutex

	KnownDevices map[string]*knownDevice
	wrappers     map[string]device.IDeviceWrapperProvider
}

// Constructs a new server state from loaded wrappers.
func newServerState(wrappers []device.IDeviceWrapperProvider) *serverState {
	s := &serverState{
		KnownDevices: make(map[string]*knownDevice),
		wrappers:     make(map[string]device.IDeviceWrapperProvider),
	}

	for _, v := range wrappers {
		s.wrappers[v.ID()] = v
		s.KnownDevices[v.ID()] = newKnownDevice(v.GetUpdateMessage())
	}

	return s
}

// Update processes device update message.
func (s *serverState) Update(msg *common.MsgDeviceUpdate) {
	s.Lock()
	defer s.Unlock()

	if _, ok := s.wrappers[msg.ID]; !ok {
		return
	}

	s.KnownDevices[msg.ID] = newKnownDevice(msg)
}

// GetAllDevices returns all known devices ordered by ID.
func (s *serverState) GetAllDevices() []*knownDevice {
	s.RLock()
	defer s.RUnlock()

	result := make([]*knownDevice, 0, len(s.KnownDevices))
	for _, v := range s.KnownDevices {
		result = append(result, v)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// GetDevice returns known device or nil.
func (s *serverState) GetDevice(deviceID string) *knownDevice {
	s.RLock()
	defer s.RUnlock()
	return s.KnownDevices[deviceID]
}

// GetWrapper returns device wrapper or nil.
func (s *serverState) GetWrapper(deviceID string) device.IDeviceWrapperProvider {
	s.RLock()
	defer s.RUnlock()
	return s.wrappers[deviceID]
}
