// Package controller contains remote command dispatcher shared by all vehicle devices.
package controller

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-home-io/vehicle/plugins/common"
	"github.com/go-home-io/vehicle/providers"
	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
)

const (
	sectionState    = "vehicle_state"
	sectionCharging = "charge_state"
	sectionClimate  = "climate_state"

	stateOnline = "online"
)

// ConstructController has data required for a new controller.
type ConstructController struct {
	Settings *providers.ControllerSettings
	Logger   common.ILoggerProvider
	API      IVehicleAPI
	Clock    func() time.Time
}

// Controller implementation.
// Snapshots are kept in the cache, keyed by vehicle ID and section.
type controller struct {
	sync.Mutex
	pollMu sync.Mutex

	api      IVehicleAPI
	logger   common.ILoggerProvider
	clock    func() time.Time
	interval time.Duration

	snapshots  *cache.Cache
	vehicles   []*providers.VehicleInfo
	states     map[string]string
	lastCheck  map[string]time.Time
	lastUpdate map[string]time.Time
}

// NewController constructs a new controller and loads list of vehicles.
// If API is not provided, REST transport is used.
func NewController(ctx context.Context, ctor *ConstructController) (providers.IController, error) {
	api := ctor.API
	if nil == api {
		api = NewRESTAPI(ctor.Settings, ctor.Logger)
	}

	clock := ctor.Clock
	if nil == clock {
		clock = time.Now
	}

	ctrl := &controller{
		api:        api,
		logger:     ctor.Logger,
		clock:      clock,
		interval:   time.Duration(ctor.Settings.UpdateInterval) * time.Second,
		snapshots:  newSnapshotCache(ctor.Settings.SnapshotTTL),
		states:     make(map[string]string),
		lastCheck:  make(map[string]time.Time),
		lastUpdate: make(map[string]time.Time),
	}

	vehicles, err := api.ListVehicles(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list vehicles")
	}

	ctrl.vehicles = vehicles
	for _, v := range vehicles {
		ctrl.states[v.ID] = v.State
		ctrl.logger.Info("Found a vehicle", common.LogVehicleToken, v.ID, "name", v.DisplayName)
	}

	return ctrl, nil
}

// Vehicles returns all known vehicles.
func (c *controller) Vehicles() []*providers.VehicleInfo {
	return c.vehicles
}

// Update polls vehicle data unless the last attempt is too recent.
// Sleeping vehicles are polled only if wakeIfAsleep is set.
// Returns whether a poll actually happened.
func (c *controller) Update(ctx context.Context, vehicleID string, wakeIfAsleep bool, force bool) (bool, error) {
	if !c.isKnown(vehicleID) {
		return false, &ErrUnknownVehicle{ID: vehicleID}
	}

	c.pollMu.Lock()
	defer c.pollMu.Unlock()

	started := c.clock()
	c.Lock()
	last, ok := c.lastCheck[vehicleID]
	if !force && ok && started.Sub(last) < c.interval {
		c.Unlock()
		return false, nil
	}

	c.lastCheck[vehicleID] = started
	c.Unlock()

	if !c.isOnline(vehicleID) {
		c.refreshStates(ctx)
	}

	if !c.isOnline(vehicleID) {
		if !wakeIfAsleep {
			c.logger.Debug("Skipping update, vehicle is asleep", common.LogVehicleToken, vehicleID)
			return false, nil
		}

		if err := c.wakeUp(ctx, vehicleID); err != nil {
			return false, err
		}
	}

	data, err := c.api.VehicleData(ctx, vehicleID)
	if err != nil {
		return false, errors.Wrap(err, "vehicle data")
	}

	c.storeSection(vehicleID, sectionState, data.State)
	c.storeSection(vehicleID, sectionCharging, data.Charging)
	c.storeSection(vehicleID, sectionClimate, data.Climate)

	c.Lock()
	c.states[vehicleID] = stateOnline
	c.lastUpdate[vehicleID] = started
	c.Unlock()

	c.logger.Debug("Vehicle data updated", common.LogVehicleToken, vehicleID)
	return true, nil
}

// GetLastUpdateTime returns start time of the last successful poll.
func (c *controller) GetLastUpdateTime(vehicleID string) time.Time {
	c.Lock()
	defer c.Unlock()
	return c.lastUpdate[vehicleID]
}

// GetStateParams returns vehicle state section of the last poll.
func (c *controller) GetStateParams(vehicleID string) map[string]interface{} {
	return c.section(vehicleID, sectionState)
}

// GetChargingParams returns charge state section of the last poll.
func (c *controller) GetChargingParams(vehicleID string) map[string]interface{} {
	return c.section(vehicleID, sectionCharging)
}

// GetClimateParams returns climate state section of the last poll.
func (c *controller) GetClimateParams(vehicleID string) map[string]interface{} {
	return c.section(vehicleID, sectionClimate)
}

// Command sends remote command, waking the vehicle up first if requested.
func (c *controller) Command(ctx context.Context, vehicleID string, name string, data map[string]interface{},
	wakeIfAsleep bool) (*providers.CommandResponse, error) {
	if !c.isKnown(vehicleID) {
		return nil, &ErrUnknownVehicle{ID: vehicleID}
	}

	if wakeIfAsleep && !c.isOnline(vehicleID) {
		if err := c.wakeUp(ctx, vehicleID); err != nil {
			return nil, err
		}
	}

	resp, err := c.api.Command(ctx, vehicleID, name, data)
	if err != nil {
		return nil, errors.Wrap(err, "command")
	}

	return resp, nil
}

// Wakes vehicle up and records its state.
func (c *controller) wakeUp(ctx context.Context, vehicleID string) error {
	c.logger.Info("Waking vehicle up", common.LogVehicleToken, vehicleID)
	state, err := c.api.WakeUp(ctx, vehicleID)
	if err != nil {
		return errors.Wrap(err, "wake up")
	}

	c.Lock()
	defer c.Unlock()
	c.states[vehicleID] = state
	return nil
}

// Re-reads vehicles states without waking them up.
func (c *controller) refreshStates(ctx context.Context) {
	vehicles, err := c.api.ListVehicles(ctx)
	if err != nil {
		c.logger.Warn("Failed to refresh vehicles state", common.LogErrorToken, err.Error())
		return
	}

	c.Lock()
	defer c.Unlock()
	for _, v := range vehicles {
		if _, ok := c.states[v.ID]; ok {
			c.states[v.ID] = v.State
		}
	}
}

// Checks whether vehicle belongs to the account.
func (c *controller) isKnown(vehicleID string) bool {
	for _, v := range c.vehicles {
		if v.ID == vehicleID {
			return true
		}
	}

	return false
}

// Checks whether vehicle was online last time it was seen.
func (c *controller) isOnline(vehicleID string) bool {
	c.Lock()
	defer c.Unlock()
	return c.states[vehicleID] == stateOnline
}

// Puts poll section into the cache. Missing sections are removed.
func (c *controller) storeSection(vehicleID string, section string, data map[string]interface{}) {
	key := snapshotKey(vehicleID, section)
	if nil == data {
		c.snapshots.Delete(key)
		return
	}

	c.snapshots.Set(key, data, cache.DefaultExpiration)
}

// Reads poll section from the cache.
func (c *controller) section(vehicleID string, section string) map[string]interface{} {
	data, ok := c.snapshots.Get(snapshotKey(vehicleID, section))
	if !ok {
		return nil
	}

	return data.(map[string]interface{})
}

// Creates snapshots store. Zero TTL means snapshots never expire.
func newSnapshotCache(ttl int) *cache.Cache {
	if ttl <= 0 {
		return cache.New(cache.NoExpiration, 0)
	}

	expiration := time.Duration(ttl) * time.Second
	return cache.New(expiration, 2*expiration)
}

// Cache key of the section.
func snapshotKey(vehicleID string, section string) string {
	return fmt.Sprintf("%s/%s", vehicleID, section)
}
