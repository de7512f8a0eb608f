package vehicle

import (
	"time"

	"github.com/go-home-io/vehicle/plugins/common"
	"github.com/go-home-io/vehicle/plugins/device"
	"github.com/go-home-io/vehicle/plugins/device/enums"
	"github.com/go-home-io/vehicle/providers"
	"github.com/go-home-io/vehicle/utils"
	"github.com/gobwas/glob"
)

// ConstructDiscovery has data required for creating devices of all known vehicles.
type ConstructDiscovery struct {
	Controller providers.IController
	Logger     common.ILoggerProvider
	Filter     []glob.Glob
	Clock      func() time.Time
}

// Discover creates devices for every vehicle known to the controller.
// Devices not matching the filter are skipped.
func Discover(ctor *ConstructDiscovery) []device.IDevice {
	result := make([]device.IDevice, 0)
	for _, v := range ctor.Controller.Vehicles() {
		devCtor := &ConstructDevice{
			Controller: ctor.Controller,
			Logger:     ctor.Logger,
			Vehicle:    v,
			Clock:      ctor.Clock,
		}

		climate := NewClimate(devCtor)
		all := []device.IDevice{NewLock(devCtor), NewChargerLock(devCtor), climate}
		for _, s := range enums.AllSeats() {
			all = append(all, NewHeatedSeat(devCtor, climate, s))
		}

		for _, d := range all {
			if !utils.MatchAnyGlob(ctor.Filter, d.ID()) {
				ctor.Logger.Debug("Skipping device since it's filtered out",
					common.LogDeviceNameToken, d.ID(), common.LogVehicleToken, v.ID)
				continue
			}

			ctor.Logger.Info("Discovered a new device", common.LogDeviceTypeToken, d.Type().String(),
				common.LogDeviceNameToken, d.ID(), common.LogVehicleToken, v.ID)
			result = append(result, d)
		}
	}

	return result
}
