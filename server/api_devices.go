package server

import (
	"io/ioutil"
	"net/http"

	"github.com/gorilla/mux"
)

// Returns all devices.
func (s *VehicleServer) getDevices(writer http.ResponseWriter, _ *http.Request) {
	respond(writer, s.state.GetAllDevices())
}

// Returns single device.
func (s *VehicleServer) getDevice(writer http.ResponseWriter, request *http.Request) {
	vars := mux.Vars(request)
	id := vars[string(urlDeviceID)]
	d := s.state.GetDevice(id)
	if nil == d {
		respondError(writer, &ErrUnknownDevice{ID: id})
		return
	}

	respond(writer, d)
}

// Executes device command.
func (s *VehicleServer) deviceCommand(writer http.ResponseWriter, request *http.Request) {
	vars := mux.Vars(request)
	b, err := ioutil.ReadAll(request.Body)
	if err != nil {
		respondError(writer, &ErrBadRequest{})
		return
	}

	respondOkError(writer, s.commandInvokeDeviceCommand(request.Context(),
		vars[string(urlDeviceID)], vars[string(urlCommandName)], b))
}
