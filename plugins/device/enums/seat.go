package enums

import "fmt"

// SeatPosition describes physical seat with a heater.
type SeatPosition int

const (
	// SeatLeft describes driver seat.
	SeatLeft SeatPosition = iota
	// SeatRight describes front passenger seat.
	SeatRight
	// SeatRearLeft describes rear left seat.
	SeatRearLeft
	// SeatRearCenter describes rear center seat.
	SeatRearCenter
	// SeatRearRight describes rear right seat.
	SeatRearRight
)

// AllSeats lists every known seat position.
func AllSeats() []SeatPosition {
	return []SeatPosition{SeatLeft, SeatRight, SeatRearLeft, SeatRearCenter, SeatRearRight}
}

func (i SeatPosition) String() string {
	switch i {
	case SeatLeft:
		return "left"
	case SeatRight:
		return "right"
	case SeatRearLeft:
		return "rear_left"
	case SeatRearCenter:
		return "rear_center"
	case SeatRearRight:
		return "rear_right"
	}

	return fmt.Sprintf("SeatPosition(%d)", int(i))
}

// SeatPositionString retrieves seat from its name.
func SeatPositionString(s string) (SeatPosition, error) {
	for _, v := range AllSeats() {
		if v.String() == s {
			return v, nil
		}
	}

	return 0, fmt.Errorf("%s does not belong to SeatPosition values", s)
}

// HeaterIndex returns heater index used by remote seat heater command.
// Index 3 is not used by vehicles.
func (i SeatPosition) HeaterIndex() (int, bool) {
	switch i {
	case SeatLeft:
		return 0, true
	case SeatRight:
		return 1, true
	case SeatRearLeft:
		return 2, true
	case SeatRearCenter:
		return 4, true
	case SeatRearRight:
		return 5, true
	}

	return -1, false
}

// StateField returns climate state field holding heater level for the seat.
func (i SeatPosition) StateField() string {
	return "seat_heater_" + i.String()
}
