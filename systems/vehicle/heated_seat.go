package vehicle

import (
	"context"

	"github.com/go-home-io/vehicle/plugins/device"
	"github.com/go-home-io/vehicle/plugins/device/enums"
)

const cmdSeatHeater = "remote_seat_heater_request"

// HeatedSeat represents single seat heater.
// Value reported to the platform is whether any seat heater of the vehicle is on.
type HeatedSeat struct {
	*vehicleDevice

	climate *Climate
	seat    enums.SeatPosition

	level      enums.HeatLevel
	anyOn      bool
	anyOnKnown bool
}

// NewHeatedSeat constructs seat heater adapter.
// Climate adapter of the same vehicle is used to turn HVAC on before heating.
func NewHeatedSeat(ctor *ConstructDevice, climate *Climate, seat enums.SeatPosition) *HeatedSeat {
	return &HeatedSeat{
		vehicleDevice: newVehicleDevice(ctor, enums.DevHeatedSeat, seat.String()),
		climate:       climate,
		seat:          seat,
		level:         enums.HeatUnknown,
	}
}

// Seat returns seat position.
func (s *HeatedSeat) Seat() enums.SeatPosition {
	return s.seat
}

// Update polls controller and refreshes cached heater data if poll is not stale.
func (s *HeatedSeat) Update(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.poll(ctx)
	if s.isFresh() {
		data := s.controller.GetClimateParams(s.vehicle.ID)
		s.anyOn, s.anyOnKnown = AnySeatHeaterOn(data)
		s.level = SeatHeatLevel(data, s.seat)
	}

	return err
}

// SetValue sets heater level from its symbolic name.
func (s *HeatedSeat) SetValue(ctx context.Context, level string) error {
	l, err := enums.HeatLevelString(level)
	if err != nil {
		return &ErrInvalidHeatLevel{Level: level}
	}

	return s.SetLevel(ctx, l)
}

// SetLevel sets heater level, turning HVAC on first if required.
func (s *HeatedSeat) SetLevel(ctx context.Context, level enums.HeatLevel) error {
	if !level.IsValid() {
		return &ErrInvalidHeatLevel{Level: level.String()}
	}

	heater, ok := s.seat.HeaterIndex()
	if !ok {
		return &ErrUnknownSeat{Seat: s.seat.String()}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.level == level {
		s.logger.Debug("Skipping command, heater is already at requested level", s.logFields()...)
		return nil
	}

	s.climate.ensureEnabled(ctx)

	data := map[string]interface{}{
		"heater": heater,
		"level":  level.Code(),
	}

	if s.command(ctx, cmdSeatHeater, data) {
		s.level = level
		// Any-seat flag is cleared only by the next fresh poll.
		if level != enums.HeatOff {
			s.anyOn, s.anyOnKnown = true, true
		}
	}

	s.stampManualUpdate()
	return nil
}

// GetValue returns whether any seat heater is on and whether it's known.
func (s *HeatedSeat) GetValue() (on bool, known bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.anyOn, s.anyOnKnown
}

// Level returns cached heater level of this seat.
func (s *HeatedSeat) Level() enums.HeatLevel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.level
}

// State returns platform representation of the seat heater.
func (s *HeatedSeat) State() interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := &device.HeatedSeatState{
		Seat:  s.seat.String(),
		Level: s.level,
	}

	if s.anyOnKnown {
		on := s.anyOn
		st.AnyOn = &on
	}

	return st
}
