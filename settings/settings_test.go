package settings

import (
	"context"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-home-io/vehicle/utils"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Starts fake remote API returning single vehicle.
func getRemote(token string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+token {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		w.Write([]byte(`{"response":[{"id_s":"1","vin":"VIN1","display_name":"Car","state":"online"}]}`)) // nolint: errcheck
	}))
}

// Tests loading full config.
func TestLoadConfig(t *testing.T) {
	srv := getRemote("env-token")
	defer srv.Close()
	os.Setenv("VEHICLE_TEST_TOKEN", "env-token") // nolint: errcheck
	defer os.Unsetenv("VEHICLE_TEST_TOKEN")      // nolint: errcheck

	cfg := fmt.Sprintf(`
server:
  port: 9000
log:
  level: debug
controller:
  baseUrl: %s
  token: {{ env "VEHICLE_TEST_TOKEN" }}
  updateInterval: 60
devices:
  pollInterval: 30
  include:
    - "*.door_lock"
    - "*.heated_seat.*"
`, srv.URL)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s, err := loadConfig(ctx, []byte(cfg), nil)
	require.NoError(t, err)

	assert.Equal(t, 9000, s.ServerSettings().Port)
	assert.Equal(t, 30, s.DevicesSettings().PollInterval)
	assert.Equal(t, 2, len(s.DeviceFilter()))
	assert.True(t, utils.MatchAnyGlob(s.DeviceFilter(), "vin1.heated_seat.left"))
	assert.False(t, utils.MatchAnyGlob(s.DeviceFilter(), "vin1.charger_door_lock"))
	require.Equal(t, 1, len(s.Controller().Vehicles()))
	assert.Equal(t, "VIN1", s.Controller().Vehicles()[0].VIN)
	assert.NotNil(t, s.Cron())
	assert.NotNil(t, s.FanOut())
	assert.NotNil(t, s.Validator())
	assert.NotNil(t, s.SystemLogger())
	assert.NotNil(t, s.PluginLogger("device", "vehicle"))
}

// Tests defaults.
func TestLoadDefaults(t *testing.T) {
	srv := getRemote("token")
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s, err := loadConfig(ctx, []byte(fmt.Sprintf("controller:\n  baseUrl: %s\n  token: token\n", srv.URL)), nil)
	require.NoError(t, err)
	assert.Equal(t, 8000, s.ServerSettings().Port)
	assert.Equal(t, 60, s.DevicesSettings().PollInterval)
	assert.Equal(t, 0, len(s.DeviceFilter()))
}

// Tests incorrect configs.
func TestLoadInvalid(t *testing.T) {
	in := []string{
		"server:\n  port: 80\n",
		"controller:\n  baseUrl: http://localhost\n",
		"controller:\n  token: token\n",
		"controller:\n  baseUrl: http://localhost\n  token: t\n  updateInterval: 5\n",
		"controller:\n  baseUrl: http://localhost\n  token: t\ndevices:\n  pollInterval: 1\n",
		"controller:\n  baseUrl: http://localhost\n  token: t\nlog:\n  level: trace\n",
		"controller:\n  baseUrl: http://localhost\n  token: t\ndevices:\n  include:\n    - \"[\"\n",
		"controller: [",
		"controller: {{ env }",
	}

	for _, v := range in {
		_, err := loadConfig(context.Background(), []byte(v), nil)
		assert.Error(t, err, v)
	}
}

// Tests unavailable remote API.
func TestLoadRemoteError(t *testing.T) {
	srv := getRemote("token")
	defer srv.Close()

	_, err := loadConfig(context.Background(),
		[]byte(fmt.Sprintf("controller:\n  baseUrl: %s\n  token: wrong\n", srv.URL)), nil)
	assert.Error(t, err)
}

// Tests loading from file system.
func TestLoadFile(t *testing.T) {
	srv := getRemote("token")
	defer srv.Close()

	dir, err := ioutil.TempDir("", "vehicle")
	require.NoError(t, err)
	defer os.RemoveAll(dir) // nolint: errcheck

	file := filepath.Join(dir, "config.yaml")
	require.NoError(t, ioutil.WriteFile(file,
		[]byte(fmt.Sprintf("controller:\n  baseUrl: %s\n  token: token\n", srv.URL)), 0600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s, err := Load(ctx, &StartUpOptions{Config: file})
	require.NoError(t, err)
	assert.Equal(t, 1, len(s.Controller().Vehicles()))

	_, err = Load(ctx, &StartUpOptions{Config: filepath.Join(dir, "missing.yaml")})
	assert.Error(t, err)
	assert.True(t, os.IsNotExist(errors.Cause(err)))
}
