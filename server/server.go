// Package server contains platform API exposing vehicle devices.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-home-io/vehicle/plugins/common"
	"github.com/go-home-io/vehicle/providers"
	"github.com/go-home-io/vehicle/systems/device"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

const (
	// Logger system representation.
	logSystem = "server"
	// Graceful shutdown timeout.
	shutdownTimeout = 5 * time.Second
)

// VehicleServer describes platform API server.
type VehicleServer struct {
	Settings providers.ISettingsProvider
	Logger   common.ILoggerProvider

	state      IServerStateProvider
	wsSettings websocket.Upgrader
}

// NewServer constructs a new server for the loaded devices.
func NewServer(settings providers.ISettingsProvider, wrappers []device.IDeviceWrapperProvider) (*VehicleServer, error) {
	if 0 == len(wrappers) {
		return nil, &ErrNoDevices{}
	}

	server := &VehicleServer{
		Logger:   settings.SystemLogger(),
		Settings: settings,
		state:    newServerState(wrappers),
		wsSettings: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}

	return server, nil
}

// Start launches server and blocks until context is cancelled.
func (s *VehicleServer) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.Settings.ServerSettings().Port),
		Handler: s.handler(),
	}

	id, updates := s.Settings.FanOut().SubscribeDeviceUpdates()
	go s.updatesCycle(ctx, id, updates)

	errs := make(chan error, 1)
	go func() {
		errs <- srv.ListenAndServe()
	}()

	s.Logger.Info(fmt.Sprintf("Started server on port %d", s.Settings.ServerSettings().Port),
		common.LogSystemToken, logSystem)

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		s.Logger.Info("Received stop command, exiting", common.LogSystemToken, logSystem)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// Constructs final HTTP handler.
func (s *VehicleServer) handler() http.Handler {
	router := mux.NewRouter()
	s.registerAPI(router)

	cors := handlers.CORS(
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	return handlers.RecoveryHandler(handlers.RecoveryLogger(&recoveryLogger{logger: s.Logger}),
		handlers.PrintRecoveryStack(false))(cors(router))
}

// All API registration.
func (s *VehicleServer) registerAPI(router *mux.Router) {
	publicRouter := router.PathPrefix(routePublic).Subrouter()
	publicRouter.HandleFunc("/ping", s.ping).Methods(http.MethodGet)

	apiRouter := router.PathPrefix(routeAPI).Subrouter()
	apiRouter.HandleFunc("/device", s.getDevices).Methods(http.MethodGet)
	apiRouter.HandleFunc(fmt.Sprintf("/device/{%s}", urlDeviceID), s.getDevice).Methods(http.MethodGet)
	apiRouter.HandleFunc(fmt.Sprintf("/device/{%s}/{%s}", urlDeviceID, urlCommandName),
		s.deviceCommand).Methods(http.MethodPost)
	apiRouter.HandleFunc("/ws", s.handleWS).Methods(http.MethodGet)
	apiRouter.Use(s.logMiddleware)
}

// Keeps server state in sync with device updates.
func (s *VehicleServer) updatesCycle(ctx context.Context, id int64, updates chan *common.MsgDeviceUpdate) {
	defer s.Settings.FanOut().UnSubscribeDeviceUpdates(id)

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-updates:
			if !ok {
				return
			}

			s.state.Update(msg)
		}
	}
}

// Sends recovered panics to the system logger.
type recoveryLogger struct {
	logger common.ILoggerProvider
}

// Println logs recovered panic.
func (l *recoveryLogger) Println(v ...interface{}) {
	l.logger.Error("Recovered from panic", errors.New(fmt.Sprint(v...)), common.LogSystemToken, logSystem)
}
