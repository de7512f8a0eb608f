package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-home-io/vehicle/server"
	"github.com/go-home-io/vehicle/settings"
	"github.com/go-home-io/vehicle/systems/device"
	"github.com/go-home-io/vehicle/systems/logger"
	"github.com/go-home-io/vehicle/systems/vehicle"
	"github.com/jessevdk/go-flags"
)

func main() {
	options := &settings.StartUpOptions{}
	_, err := flags.Parse(options)
	if err != nil {
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s, err := settings.Load(ctx, options)
	if err != nil {
		logger.NewConsoleLogger(nil).Fatal("Failed to load settings", err)
	}

	s.SystemLogger().Info("Starting vehicle devices server")

	devices := vehicle.Discover(&vehicle.ConstructDiscovery{
		Controller: s.Controller(),
		Logger:     s.PluginLogger("vehicle", "discovery"),
		Filter:     s.DeviceFilter(),
	})

	wrappers := make([]device.IDeviceWrapperProvider, 0, len(devices))
	for _, d := range devices {
		w := device.NewDeviceWrapper(&device.ConstructWrapper{
			Device:       d,
			Logger:       s.PluginLogger("device", d.Type().String()),
			Cron:         s.Cron(),
			Validator:    s.Validator(),
			FanOut:       s.FanOut(),
			PollInterval: time.Duration(s.DevicesSettings().PollInterval) * time.Second,
		})

		go w.Refresh()
		wrappers = append(wrappers, w)
	}

	srv, err := server.NewServer(s, wrappers)
	if err != nil {
		s.SystemLogger().Fatal("Failed to start server", err)
	}

	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		cancel()
	}()

	err = srv.Start(ctx)
	for _, w := range wrappers {
		w.Unload()
	}

	if err != nil {
		s.SystemLogger().Fatal("Server stopped unexpectedly", err)
	}
}
