package enums

// LockStatus describes cached state of a two-state mechanism.
type LockStatus int

const (
	// LockUnknown describes state which wasn't observed yet or couldn't be read.
	LockUnknown LockStatus = iota
	// LockEngaged describes locked or closed mechanism.
	LockEngaged
	// LockDisengaged describes unlocked or opened mechanism.
	LockDisengaged
)

func (i LockStatus) String() string {
	switch i {
	case LockEngaged:
		return "engaged"
	case LockDisengaged:
		return "disengaged"
	}

	return "unknown"
}

// LockStatusFromBool converts boolean lock flag.
func LockStatusFromBool(locked bool) LockStatus {
	if locked {
		return LockEngaged
	}

	return LockDisengaged
}

// Bool returns lock flag and whether it is known.
func (i LockStatus) Bool() (locked bool, known bool) {
	return i == LockEngaged, i != LockUnknown
}

// MarshalText implements the encoding.TextMarshaler interface for LockStatus.
func (i LockStatus) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}
