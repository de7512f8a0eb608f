package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-home-io/vehicle/plugins/common"
	"github.com/gorilla/websocket"
)

// Incoming WS command.
type wsCmd struct {
	ID  string      `json:"id"`
	Cmd string      `json:"cmd"`
	Val interface{} `json:"value"`
}

// Handles WS upgrade request.
func (s *VehicleServer) handleWS(writer http.ResponseWriter, request *http.Request) {
	c, err := s.wsSettings.Upgrade(writer, request, nil)
	if err != nil {
		s.Logger.Error("Failed to establish a WS connection", err, common.LogSystemToken, logSystem)
		return
	}

	go s.processWSConnection(c)
}

// Processes WS connection: streams device updates until client disconnects.
// noinspection GoUnhandledErrorResult
func (s *VehicleServer) processWSConnection(conn *websocket.Conn) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan bool, 1)
	pongs := make(chan int, 1)
	go s.processIncomingWSMessages(ctx, conn, stop, pongs)
	deviceSubID, deviceUpd := s.Settings.FanOut().SubscribeDeviceUpdates()
	defer s.Settings.FanOut().UnSubscribeDeviceUpdates(deviceSubID)

	for {
		select {
		case <-stop:
			return
		case mt := <-pongs:
			conn.WriteMessage(mt, []byte("pong")) // nolint: gosec, errcheck
		case msg, ok := <-deviceUpd:
			if !ok {
				conn.Close() // nolint: gosec, errcheck
				return
			}

			conn.WriteJSON(newKnownDevice(msg)) // nolint: gosec, errcheck
		}
	}
}

// Processes incoming WS messages.
// All writes happen in the connection loop, pong requests are passed there.
// noinspection GoUnhandledErrorResult
func (s *VehicleServer) processIncomingWSMessages(ctx context.Context, conn *websocket.Conn, stop chan bool,
	pongs chan int) {
	defer conn.Close() // nolint: errcheck
	for {
		mt, message, err := conn.ReadMessage()
		if err != nil {
			s.Logger.Debug("Closing WS connection", common.LogSystemToken, logSystem)
			stop <- true
			return
		}

		// Ping request comes as a un-wrapped string
		if "ping" == string(message) {
			pongs <- mt
			continue
		}

		cmd := &wsCmd{}
		err = json.Unmarshal(message, cmd)
		if err != nil {
			s.Logger.Error("Failed to un-marshal WS command", err, common.LogSystemToken, logSystem)
			continue
		}

		var data []byte
		if cmd.Val != nil {
			data, err = json.Marshal(map[string]interface{}{"value": cmd.Val})
			if err != nil {
				s.Logger.Error("Failed to marshal WS command", err, common.LogSystemToken, logSystem)
				continue
			}
		}

		s.commandInvokeDeviceCommand(ctx, cmd.ID, cmd.Cmd, data) // nolint: gosec, errcheck
	}
}
