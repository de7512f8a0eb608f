package logger

import (
	"testing"

	"github.com/go-home-io/vehicle/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

// Tests that every operation invoked correctly.
func TestPluginLogger(t *testing.T) {
	called := make(map[string]bool)
	ctor := &ConstructPluginLogger{
		Provider: "rest",
		SystemLogger: mocks.FakeNewLogger(func(s string) {
			called[s] = true
		}),
		System: "controller",
	}

	l := NewPluginLogger(ctor)
	l.Debug("Debug")
	l.Info("Info")
	l.Warn("Warn")
	l.Error("Error", errors.New(""))
	l.Fatal("Fatal", errors.New(""))

	for _, v := range []string{"Debug", "Info", "Warn", "Error", "Fatal"} {
		assert.True(t, called[v], v)
	}
}

// Tests that component fields are appended.
func TestPluginLoggerFields(t *testing.T) {
	fake := &fieldsLogger{}
	l := NewPluginLogger(&ConstructPluginLogger{
		SystemLogger: fake,
		System:       "device",
		Provider:     "vehicle",
	})

	l.Info("test", "vehicle", "1")
	assert.Equal(t, []string{"vehicle", "1", "system", "device", "provider", "vehicle"}, fake.fields)
}
