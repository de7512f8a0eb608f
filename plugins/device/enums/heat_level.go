package enums

import "fmt"

// HeatLevel describes seat heater level.
type HeatLevel int

const (
	// HeatUnknown describes level which is not known yet.
	HeatUnknown HeatLevel = iota - 1
	// HeatOff describes turned off heater.
	HeatOff
	// HeatLow describes low heater level.
	HeatLow
	// HeatMedium describes medium heater level.
	HeatMedium
	// HeatHigh describes high heater level.
	HeatHigh
)

func (i HeatLevel) String() string {
	switch i {
	case HeatOff:
		return "Off"
	case HeatLow:
		return "Low"
	case HeatMedium:
		return "Medium"
	case HeatHigh:
		return "High"
	}

	return "Unknown"
}

// HeatLevelString converts symbolic level into the enum.
// Only Off, Low, Medium and High are accepted.
func HeatLevelString(s string) (HeatLevel, error) {
	for _, v := range []HeatLevel{HeatOff, HeatLow, HeatMedium, HeatHigh} {
		if v.String() == s {
			return v, nil
		}
	}

	return HeatUnknown, fmt.Errorf("%s does not belong to HeatLevel values", s)
}

// HeatLevelFromCode converts numeric vehicle code into the enum.
func HeatLevelFromCode(code int) (HeatLevel, bool) {
	l := HeatLevel(code)
	if !l.IsValid() {
		return HeatUnknown, false
	}

	return l, true
}

// IsValid checks whether level could be sent to the vehicle.
func (i HeatLevel) IsValid() bool {
	return i >= HeatOff && i <= HeatHigh
}

// Code returns numeric level used by remote seat heater command.
func (i HeatLevel) Code() int {
	return int(i)
}

// MarshalText implements the encoding.TextMarshaler interface for HeatLevel.
func (i HeatLevel) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}
