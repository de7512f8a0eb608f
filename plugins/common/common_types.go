// Package common contains data shared between all components.
package common

// HeatLevel defines symbolic heat level command parameter.
type HeatLevel struct {
	Value string `json:"value" validate:"required,heatlevel"`
}
