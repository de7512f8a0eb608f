package vehicle

import (
	"sync"
	"time"

	"github.com/go-home-io/vehicle/mocks"
	"github.com/go-home-io/vehicle/providers"
)

var testVehicle = &providers.VehicleInfo{
	ID:          "12345",
	VIN:         "5YJ3E1EA7KF000001",
	DisplayName: "Model 3",
	State:       "online",
}

// Manually driven clock.
type fakeClock struct {
	sync.Mutex
	now time.Time
}

func newFakeClock(sec int64) *fakeClock {
	return &fakeClock{now: time.Unix(sec, 0)}
}

func (c *fakeClock) Now() time.Time {
	c.Lock()
	defer c.Unlock()
	return c.now
}

func (c *fakeClock) Set(sec int64) {
	c.Lock()
	defer c.Unlock()
	c.now = time.Unix(sec, 0)
}

func getCtor(ctrl *mocks.FakeController, clock *fakeClock) *ConstructDevice {
	return &ConstructDevice{
		Controller: ctrl,
		Logger:     mocks.FakeNewLogger(nil),
		Vehicle:    testVehicle,
		Clock:      clock.Now,
	}
}

func at(sec int64) time.Time {
	return time.Unix(sec, 0)
}

func commandNames(ctrl *mocks.FakeController) []string {
	result := make([]string, 0)
	for _, v := range ctrl.Commands() {
		result = append(result, v.Name)
	}

	return result
}
