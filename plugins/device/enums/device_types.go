package enums

import "fmt"

// DeviceType describes enum with known device types.
type DeviceType int

const (
	// DevUnknown describes unknown device type.
	DevUnknown DeviceType = iota
	// DevLock describes door lock device type.
	DevLock
	// DevChargerLock describes charger port door lock device type.
	DevChargerLock
	// DevClimate describes climate control device type.
	DevClimate
	// DevHeatedSeat describes heated seat device type.
	DevHeatedSeat
)

const deviceTypeNames = "unknowndoor-lockcharger-door-lockclimateheated-seat"

var deviceTypeIndex = [...]uint8{0, 7, 16, 33, 40, 51}

func (i DeviceType) String() string {
	if i < 0 || i >= DeviceType(len(deviceTypeIndex)-1) {
		return fmt.Sprintf("DeviceType(%d)", i)
	}
	return deviceTypeNames[deviceTypeIndex[i]:deviceTypeIndex[i+1]]
}

// DeviceTypeString retrieves an enum value from the enum constants string name.
// Throws an error if the param is not part of the enum.
func DeviceTypeString(s string) (DeviceType, error) {
	for ii := 0; ii < len(deviceTypeIndex)-1; ii++ {
		if DeviceType(ii).String() == s {
			return DeviceType(ii), nil
		}
	}
	return 0, fmt.Errorf("%s does not belong to DeviceType values", s)
}

// HumanName returns the name used when building device names.
func (i DeviceType) HumanName() string {
	switch i {
	case DevLock:
		return "door lock"
	case DevChargerLock:
		return "charger door lock"
	case DevClimate:
		return "HVAC (climate) system"
	case DevHeatedSeat:
		return "heated seat"
	}

	return "unknown"
}

// MarshalText implements the encoding.TextMarshaler interface for DeviceType.
func (i DeviceType) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface for DeviceType.
func (i *DeviceType) UnmarshalText(text []byte) error {
	var err error
	*i, err = DeviceTypeString(string(text))
	return err
}

// DeviceClass describes how home-automation platform classifies the device.
type DeviceClass int

const (
	// ClassUnknown describes unknown classification.
	ClassUnknown DeviceClass = iota
	// ClassLock describes lock classification.
	ClassLock
	// ClassBinarySensor describes binary sensor classification.
	ClassBinarySensor
	// ClassClimate describes climate classification.
	ClassClimate
)

func (i DeviceClass) String() string {
	switch i {
	case ClassLock:
		return "lock"
	case ClassBinarySensor:
		return "binary_sensor"
	case ClassClimate:
		return "climate"
	}

	return "unknown"
}

// MarshalText implements the encoding.TextMarshaler interface for DeviceClass.
func (i DeviceClass) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// Class returns platform classification of the device type.
func (i DeviceType) Class() DeviceClass {
	switch i {
	case DevLock, DevChargerLock:
		return ClassLock
	case DevClimate:
		return ClassClimate
	case DevHeatedSeat:
		return ClassBinarySensor
	}

	return ClassUnknown
}

// UnmarshalText implements the encoding.TextUnmarshaler interface for DeviceClass.
func (i *DeviceClass) UnmarshalText(text []byte) error {
	for _, v := range []DeviceClass{ClassUnknown, ClassLock, ClassBinarySensor, ClassClimate} {
		if v.String() == string(text) {
			*i = v
			return nil
		}
	}

	return fmt.Errorf("%s does not belong to DeviceClass values", string(text))
}
