package controller

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-home-io/vehicle/mocks"
	"github.com/go-home-io/vehicle/providers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const vehicleDataPayload = `{
  "response": {
    "id_s": "1",
    "vehicle_state": {"locked": false, "odometer": 1000.5},
    "charge_state": {"charge_port_door_open": true, "charge_port_latch": "Engaged"},
    "climate_state": {"is_climate_on": true, "seat_heater_left": 2}
  }
}`

// Starts fake remote API.
func getServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, IVehicleAPI) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		handler(w, r)
	}))

	api := NewRESTAPI(&providers.ControllerSettings{
		BaseURL: srv.URL + "/",
		Token:   "secret",
		Timeout: 5,
	}, mocks.FakeNewLogger(nil))

	return srv, api
}

// Tests vehicles list.
func TestRESTListVehicles(t *testing.T) {
	srv, api := getServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/1/vehicles", r.URL.Path)
		w.Write([]byte(`{"response":[{"id_s":"1","vin":"VIN1","display_name":"Car","state":"online"}],"count":1}`)) // nolint: errcheck
	})
	defer srv.Close()

	vehicles, err := api.ListVehicles(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, len(vehicles))
	assert.Equal(t, "1", vehicles[0].ID)
	assert.Equal(t, "VIN1", vehicles[0].VIN)
	assert.Equal(t, "Car", vehicles[0].DisplayName)
	assert.Equal(t, "online", vehicles[0].State)
}

// Tests sections extraction.
func TestRESTVehicleData(t *testing.T) {
	srv, api := getServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/1/vehicles/1/vehicle_data", r.URL.Path)
		w.Write([]byte(vehicleDataPayload)) // nolint: errcheck
	})
	defer srv.Close()

	data, err := api.VehicleData(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, false, data.State["locked"])
	assert.Equal(t, "Engaged", data.Charging["charge_port_latch"])
	assert.Equal(t, 2.0, data.Climate["seat_heater_left"])
}

// Tests missing sections.
func TestRESTVehicleDataMissingSections(t *testing.T) {
	srv, api := getServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response":{"vehicle_state":{"locked":true}}}`)) // nolint: errcheck
	})
	defer srv.Close()

	data, err := api.VehicleData(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, true, data.State["locked"])
	assert.Nil(t, data.Charging)
	assert.Nil(t, data.Climate)
}

// Tests commands payload and responses.
func TestRESTCommand(t *testing.T) {
	srv, api := getServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		switch r.URL.Path {
		case "/api/1/vehicles/1/command/remote_seat_heater_request":
			body, _ := ioutil.ReadAll(r.Body)
			data := make(map[string]interface{})
			assert.NoError(t, json.Unmarshal(body, &data))
			assert.Equal(t, 4.0, data["heater"])
			assert.Equal(t, 3.0, data["level"])
			w.Write([]byte(`{"response":{"result":true,"reason":""}}`)) // nolint: errcheck
		case "/api/1/vehicles/1/command/door_lock":
			w.Write([]byte(`{"response":{"result":false,"reason":"could_not_wake_buses"}}`)) // nolint: errcheck
		case "/api/1/vehicles/1/command/door_unlock":
			w.Write([]byte(`{"error":"vehicle unavailable"}`)) // nolint: errcheck
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	defer srv.Close()

	resp, err := api.Command(context.Background(), "1", "remote_seat_heater_request",
		map[string]interface{}{"heater": 4, "level": 3})
	require.NoError(t, err)
	assert.True(t, resp.IsSuccess())

	resp, err = api.Command(context.Background(), "1", "door_lock", nil)
	require.NoError(t, err)
	assert.False(t, resp.IsSuccess())
	assert.Equal(t, "could_not_wake_buses", resp.Response.Reason)

	resp, err = api.Command(context.Background(), "1", "door_unlock", nil)
	require.NoError(t, err)
	assert.False(t, resp.IsSuccess())

	_, err = api.Command(context.Background(), "1", "flash_lights", nil)
	require.Error(t, err)
	e, ok := err.(*ErrBadStatus)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, e.Code)
}

// Tests wake up.
func TestRESTWakeUp(t *testing.T) {
	srv, api := getServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/1/vehicles/1/wake_up", r.URL.Path)
		w.Write([]byte(`{"response":{"id_s":"1","state":"online"}}`)) // nolint: errcheck
	})
	defer srv.Close()

	state, err := api.WakeUp(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "online", state)
}

// Tests wake up with unreadable response.
func TestRESTWakeUpMalformed(t *testing.T) {
	data := []string{
		`not json at all`,
		`{"response":{"id_s":"1"}}`,
	}

	for _, v := range data {
		body := v
		srv, api := getServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body)) // nolint: errcheck
		})

		state, err := api.WakeUp(context.Background(), "1")
		srv.Close()

		require.Error(t, err, body)
		_, ok := err.(*ErrMalformedResponse)
		assert.True(t, ok, body)
		assert.Equal(t, "", state, body)
	}
}

// Tests unauthorized access.
func TestRESTUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	api := NewRESTAPI(&providers.ControllerSettings{BaseURL: srv.URL, Token: "wrong", Timeout: 5},
		mocks.FakeNewLogger(nil))
	_, err := api.ListVehicles(context.Background())
	require.Error(t, err)
	_, ok := err.(*ErrBadStatus)
	assert.True(t, ok)
}
