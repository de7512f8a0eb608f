// Package settings is responsible for parsing yaml-based configuration.
package settings

import (
	"context"
	"io/ioutil"

	"github.com/go-home-io/vehicle/plugins/common"
	"github.com/go-home-io/vehicle/providers"
	"github.com/go-home-io/vehicle/systems/controller"
	"github.com/go-home-io/vehicle/systems/fanout"
	"github.com/go-home-io/vehicle/systems/logger"
	"github.com/go-home-io/vehicle/utils"
	"github.com/gobwas/glob"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	// Logger system.
	logSystem = "settings"
)

// StartUpOptions defines arguments allowed by the system.
type StartUpOptions struct {
	Config string `short:"c" long:"config" description:"Config file location." default:"./config.yaml"`
}

// Config file structure.
type rawConfig struct {
	Server     *providers.ServerSettings     `yaml:"server"`
	Log        *providers.LogSettings        `yaml:"log"`
	Controller *providers.ControllerSettings `yaml:"controller"`
	Devices    *providers.DevicesSettings    `yaml:"devices"`
}

// System settings.
type settingsProvider struct {
	logger     common.ILoggerProvider
	cron       providers.ICronProvider
	validator  providers.IValidatorProvider
	fanOut     providers.IInternalFanOutProvider
	controller providers.IController

	server  *providers.ServerSettings
	devices *providers.DevicesSettings
	filter  []glob.Glob
}

// Load reads configuration file and constructs all shared providers.
// Context is used for background activities and for the initial vehicles lookup.
func Load(ctx context.Context, options *StartUpOptions) (providers.ISettingsProvider, error) {
	data, err := ioutil.ReadFile(options.Config)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}

	return loadConfig(ctx, data, nil)
}

// Parses config data. Controller transport could be overridden.
func loadConfig(ctx context.Context, data []byte, api controller.IVehicleAPI) (*settingsProvider, error) {
	bootLogger := logger.NewConsoleLogger(nil)
	s := &settingsProvider{
		validator: utils.NewValidator(bootLogger),
	}

	data, err := newTemplateProvider(&constructTemplate{Logger: bootLogger}).Process(data)
	if err != nil {
		return nil, err
	}

	raw := &rawConfig{}
	if err := yaml.Unmarshal(data, raw); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}

	if err := s.validate(raw); err != nil {
		return nil, err
	}

	s.logger, err = logger.NewLoggerProvider(&logger.ConstructLogger{Level: raw.Log.Level})
	if err != nil {
		return nil, err
	}

	s.validator.SetLogger(s.logger)
	s.server = raw.Server
	s.devices = raw.Devices
	s.filter, err = utils.CompileGlobs(raw.Devices.Include)
	if err != nil {
		return nil, err
	}

	s.cron = utils.NewCron()
	s.fanOut = fanout.NewFanOut(ctx)
	s.controller, err = controller.NewController(ctx, &controller.ConstructController{
		Settings: raw.Controller,
		Logger:   s.PluginLogger("controller", "rest"),
		API:      api,
	})
	if err != nil {
		return nil, err
	}

	return s, nil
}

// Validates every section, applying defaults to the missing ones.
func (s *settingsProvider) validate(raw *rawConfig) error {
	if nil == raw.Server {
		raw.Server = &providers.ServerSettings{}
	}

	if nil == raw.Log {
		raw.Log = &providers.LogSettings{}
	}

	if nil == raw.Devices {
		raw.Devices = &providers.DevicesSettings{}
	}

	if nil == raw.Controller {
		return errors.Wrap(&utils.ErrInvalidConfig{}, "controller section is missing")
	}

	for _, v := range []interface{}{raw.Server, raw.Log, raw.Controller, raw.Devices} {
		if !s.validator.Validate(v) {
			return &utils.ErrInvalidConfig{}
		}
	}

	return nil
}
