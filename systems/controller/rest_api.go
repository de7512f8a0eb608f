package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"github.com/go-home-io/vehicle/plugins/common"
	"github.com/go-home-io/vehicle/providers"
	"github.com/pkg/errors"
	"github.com/savaki/jq"
)

const (
	routeVehicles    = "/api/1/vehicles"
	routeVehicleData = "/api/1/vehicles/%s/vehicle_data"
	routeWakeUp      = "/api/1/vehicles/%s/wake_up"
	routeCommand     = "/api/1/vehicles/%s/command/%s"
)

// Pre-compiled selectors of the vehicle data sections.
var (
	opVehicleState = mustParse(".response.vehicle_state")
	opChargeState  = mustParse(".response.charge_state")
	opClimateState = mustParse(".response.climate_state")
	opWakeUpState  = mustParse(".response.state")
)

// REST transport with a static bearer token.
type restAPI struct {
	baseURL string
	token   string
	client  *http.Client
	logger  common.ILoggerProvider
}

// Envelope of the vehicles list.
type vehiclesResponse struct {
	Response []*providers.VehicleInfo `json:"response"`
	Count    int                      `json:"count"`
}

// NewRESTAPI constructs transport talking to the remote vehicle API.
func NewRESTAPI(settings *providers.ControllerSettings, logger common.ILoggerProvider) IVehicleAPI {
	return &restAPI{
		baseURL: strings.TrimRight(settings.BaseURL, "/"),
		token:   settings.Token,
		logger:  logger,
		client: &http.Client{
			Timeout: time.Duration(settings.Timeout) * time.Second,
		},
	}
}

// ListVehicles returns all vehicles of the account.
func (r *restAPI) ListVehicles(ctx context.Context) ([]*providers.VehicleInfo, error) {
	body, err := r.do(ctx, http.MethodGet, routeVehicles, nil)
	if err != nil {
		return nil, err
	}

	resp := &vehiclesResponse{}
	if err := json.Unmarshal(body, resp); err != nil {
		return nil, errors.Wrap(err, "decode vehicles")
	}

	return resp.Response, nil
}

// VehicleData polls vehicle and extracts required sections.
func (r *restAPI) VehicleData(ctx context.Context, vehicleID string) (*VehicleData, error) {
	body, err := r.do(ctx, http.MethodGet, fmt.Sprintf(routeVehicleData, vehicleID), nil)
	if err != nil {
		return nil, err
	}

	return &VehicleData{
		State:    extractSection(opVehicleState, body),
		Charging: extractSection(opChargeState, body),
		Climate:  extractSection(opClimateState, body),
	}, nil
}

// WakeUp asks vehicle to wake up and returns reported state.
func (r *restAPI) WakeUp(ctx context.Context, vehicleID string) (string, error) {
	route := fmt.Sprintf(routeWakeUp, vehicleID)
	body, err := r.do(ctx, http.MethodPost, route, nil)
	if err != nil {
		return "", err
	}

	state, err := opWakeUpState.Apply(body)
	if err != nil {
		return "", &ErrMalformedResponse{URL: route}
	}

	return strings.Trim(string(state), "\""), nil
}

// Command sends remote command.
// Nil response is returned if vehicle didn't report result.
func (r *restAPI) Command(ctx context.Context, vehicleID string, name string,
	data map[string]interface{}) (*providers.CommandResponse, error) {
	route := fmt.Sprintf(routeCommand, vehicleID, name)
	var payload io.Reader
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			return nil, errors.Wrap(err, "encode command")
		}

		payload = bytes.NewReader(raw)
	}

	body, err := r.do(ctx, http.MethodPost, route, payload)
	if err != nil {
		return nil, err
	}

	if 0 == len(bytes.TrimSpace(body)) {
		return nil, nil
	}

	resp := &providers.CommandResponse{}
	if err := json.Unmarshal(body, resp); err != nil {
		r.logger.Warn("Received malformed command response", common.LogURLToken, route,
			common.LogRemoteCommandToken, name)
		return nil, nil
	}

	return resp, nil
}

// Performs authorized request and reads the body.
func (r *restAPI) do(ctx context.Context, method string, route string, payload io.Reader) ([]byte, error) {
	req, err := http.NewRequest(method, r.baseURL+route, payload)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}

	req = req.WithContext(ctx)
	req.Header.Set("Authorization", "Bearer "+r.token)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	r.logger.Debug("Calling remote API", common.LogURLToken, route)
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "remote api")
	}

	defer resp.Body.Close() // nolint: errcheck

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read body")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &ErrBadStatus{URL: route, Code: resp.StatusCode}
	}

	return body, nil
}

// Extracts single JSON object. Missing or non-object sections are nil.
func extractSection(op jq.Op, body []byte) map[string]interface{} {
	raw, err := op.Apply(body)
	if err != nil {
		return nil
	}

	data := make(map[string]interface{})
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil
	}

	return data
}

// Parses compile-time selector.
func mustParse(selector string) jq.Op {
	op, err := jq.Parse(selector)
	if err != nil {
		panic(err)
	}

	return op
}
