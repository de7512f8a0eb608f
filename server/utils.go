package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-home-io/vehicle/plugins/common"
	"github.com/go-home-io/vehicle/systems/device"
	"github.com/go-home-io/vehicle/systems/vehicle"
)

// Error API response.
type errorResponse struct {
	Status  string `json:"status"`
	Problem string `json:"problem"`
}

// Plain HTTP_200 API response.
func respondOk(writer http.ResponseWriter) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(http.StatusOK)
	io.WriteString(writer, `{ "status": "OK" }`) // nolint: errcheck
}

// Generic API respond.
func respond(writer http.ResponseWriter, data interface{}) {
	d, err := json.Marshal(data)
	if err != nil {
		respondError(writer, err)
		return
	}

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(http.StatusOK)
	writer.Write(d) // nolint: errcheck
}

// Validates whether error is not null and responds different status
// depending on it.
func respondOkError(writer http.ResponseWriter, err error) {
	if err != nil {
		respondError(writer, err)
	} else {
		respondOk(writer)
	}
}

// Error API response, status depends on the error.
func respondError(writer http.ResponseWriter, err error) {
	d, _ := json.Marshal(&errorResponse{Status: "ERROR", Problem: err.Error()}) // nolint: gosec
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(errorStatus(err))
	writer.Write(d) // nolint: errcheck
}

// Maps error to the HTTP status.
func errorStatus(err error) int {
	switch err.(type) {
	case *ErrUnknownDevice:
		return http.StatusNotFound
	case *ErrUnknownCommand, *ErrBadRequest, *device.ErrUnsupportedCommand, *device.ErrInvalidParams,
		*vehicle.ErrInvalidHeatLevel, *vehicle.ErrUnknownSeat:
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

// Logger middleware for the API.
func (s *VehicleServer) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Logger.Debug("REST invocation", common.LogURLToken, r.RequestURI, common.LogSystemToken, logSystem)
		next.ServeHTTP(w, r)
	})
}
