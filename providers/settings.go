package providers

import (
	"github.com/go-home-io/vehicle/plugins/common"
	"github.com/gobwas/glob"
)

// ISettingsProvider defines settings loader provider logic.
type ISettingsProvider interface {
	SystemLogger() common.ILoggerProvider
	PluginLogger(system string, provider string) common.ILoggerProvider
	Cron() ICronProvider
	Validator() IValidatorProvider
	FanOut() IInternalFanOutProvider
	Controller() IController
	ServerSettings() *ServerSettings
	DevicesSettings() *DevicesSettings
	DeviceFilter() []glob.Glob
}

// ServerSettings has configured data for the platform API.
type ServerSettings struct {
	Port int `yaml:"port" validate:"required,port" default:"8000"`
}

// LogSettings has configured data for the system logger.
type LogSettings struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error" default:"info"`
}

// ControllerSettings has configured data for the remote API controller.
type ControllerSettings struct {
	BaseURL        string `yaml:"baseUrl" validate:"required,url"`
	Token          string `yaml:"token" validate:"required"`
	UpdateInterval int    `yaml:"updateInterval" validate:"gte=10" default:"300"`
	SnapshotTTL    int    `yaml:"snapshotTtl" validate:"gte=0"`
	Timeout        int    `yaml:"timeout" validate:"gt=0" default:"30"`
}

// DevicesSettings has configured data for exposed devices.
type DevicesSettings struct {
	PollInterval int      `yaml:"pollInterval" validate:"gte=10" default:"60"`
	Include      []string `yaml:"include"`
}
