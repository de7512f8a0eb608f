// Package enums contains various enumerations and rules for vehicle devices.
package enums

import (
	"fmt"
	"strings"
)

// Command describes enum with known device commands.
type Command int

const (
	// CmdLock describes locking command.
	CmdLock Command = iota
	// CmdUnlock describes unlocking command.
	CmdUnlock
	// CmdOn describes turning on command.
	CmdOn
	// CmdOff describes turning off command.
	CmdOff
	// CmdSetLevel describes changing level command.
	CmdSetLevel
)

var commandNames = [...]string{"lock", "unlock", "on", "off", "set-level"}

func (i Command) String() string {
	if i < 0 || int(i) >= len(commandNames) {
		return fmt.Sprintf("Command(%d)", i)
	}
	return commandNames[i]
}

// CommandString retrieves an enum value from the enum constants string name.
// Throws an error if the param is not part of the enum.
func CommandString(s string) (Command, error) {
	for ii, v := range commandNames {
		if v == s {
			return Command(ii), nil
		}
	}
	return 0, fmt.Errorf("%s does not belong to Command values", s)
}

// AllowedCommands returns set of all possible commands for the device type.
func AllowedCommands(deviceType DeviceType) []Command {
	switch deviceType {
	case DevLock, DevChargerLock:
		return []Command{CmdLock, CmdUnlock}
	case DevClimate:
		return []Command{CmdOn, CmdOff}
	case DevHeatedSeat:
		return []Command{CmdSetLevel}
	}

	return []Command{}
}

// SliceContainsCommand checks whether slice contains certain command.
func SliceContainsCommand(s []Command, e Command) bool {
	for _, a := range s {
		if a == e {
			return true
		}
	}
	return false
}

// IsCommandAllowed checks whether command is allowed for this device type.
func (i Command) IsCommandAllowed(deviceType DeviceType) bool {
	return SliceContainsCommand(AllowedCommands(deviceType), i)
}

// GetCommandMethodName transforms string representation of the command into actual method name.
func (i Command) GetCommandMethodName() string {
	parts := strings.Split(i.String(), "-")
	result := ""
	for _, v := range parts {
		if v == "" {
			continue
		}
		result += strings.ToUpper(v[:1]) + v[1:]
	}

	return result
}
