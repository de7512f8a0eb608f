package settings

import (
	"github.com/go-home-io/vehicle/plugins/common"
	"github.com/go-home-io/vehicle/providers"
	"github.com/go-home-io/vehicle/systems/logger"
	"github.com/gobwas/glob"
)

// SystemLogger returns default system logger.
func (s *settingsProvider) SystemLogger() common.ILoggerProvider {
	return s.logger
}

// PluginLogger returns logger specifically for the component.
func (s *settingsProvider) PluginLogger(system string, provider string) common.ILoggerProvider {
	return logger.NewPluginLogger(&logger.ConstructPluginLogger{
		SystemLogger: s.logger,
		System:       system,
		Provider:     provider,
	})
}

// Cron returns system's cron provider.
func (s *settingsProvider) Cron() providers.ICronProvider {
	return s.cron
}

// Validator returns yaml validator provider.
func (s *settingsProvider) Validator() providers.IValidatorProvider {
	return s.validator
}

// FanOut returns fan out channel.
func (s *settingsProvider) FanOut() providers.IInternalFanOutProvider {
	return s.fanOut
}

// Controller returns remote command dispatcher.
func (s *settingsProvider) Controller() providers.IController {
	return s.controller
}

// ServerSettings returns platform API settings.
func (s *settingsProvider) ServerSettings() *providers.ServerSettings {
	return s.server
}

// DevicesSettings returns exposed devices settings.
func (s *settingsProvider) DevicesSettings() *providers.DevicesSettings {
	return s.devices
}

// DeviceFilter returns compiled include patterns.
func (s *settingsProvider) DeviceFilter() []glob.Glob {
	return s.filter
}
