// Package logger provides system loggers.
package logger

import (
	"fmt"
	"io"

	"github.com/go-home-io/vehicle/plugins/common"
)

// LogLevel describes minimal level of logged messages.
type LogLevel int

const (
	// Debug logs everything.
	Debug LogLevel = iota
	// Info logs info and above.
	Info
	// Warning logs warnings and above.
	Warning
	// Error logs errors only.
	Error
)

// ErrUnknownLevel defines unknown log level error.
type ErrUnknownLevel struct {
	Level string
}

// Error formats output.
func (e *ErrUnknownLevel) Error() string {
	return fmt.Sprintf("unknown log level %s", e.Level)
}

// Level-filtering logger implementation.
type provider struct {
	logger common.ILoggerProvider
	level  LogLevel
}

// ConstructLogger has data required for a new logger.
type ConstructLogger struct {
	Level  string
	Output io.Writer
	Logger common.ILoggerProvider
}

// NewLoggerProvider constructs a new system logger.
// Console logger is used unless another one is provided.
func NewLoggerProvider(ctor *ConstructLogger) (common.ILoggerProvider, error) {
	level, err := ParseLevel(ctor.Level)
	if err != nil {
		return nil, err
	}

	l := ctor.Logger
	if nil == l {
		l = NewConsoleLogger(ctor.Output)
	}

	return &provider{
		logger: l,
		level:  level,
	}, nil
}

// ParseLevel converts config value into the log level.
// Empty value means info.
func ParseLevel(level string) (LogLevel, error) {
	switch level {
	case "debug":
		return Debug, nil
	case "", "info":
		return Info, nil
	case "warn", "warning":
		return Warning, nil
	case "error":
		return Error, nil
	}

	return Info, &ErrUnknownLevel{Level: level}
}

// Debug sends debug level message.
func (p *provider) Debug(msg string, fields ...string) {
	if p.level <= Debug {
		p.logger.Debug(msg, fields...)
	}
}

// Info sends info level message.
func (p *provider) Info(msg string, fields ...string) {
	if p.level <= Info {
		p.logger.Info(msg, fields...)
	}
}

// Warn sends warning level message.
func (p *provider) Warn(msg string, fields ...string) {
	if p.level <= Warning {
		p.logger.Warn(msg, fields...)
	}
}

// Error sends error level message.
func (p *provider) Error(msg string, err error, fields ...string) {
	p.logger.Error(msg, err, fields...)
}

// Fatal sends fatal level message and exits.
func (p *provider) Fatal(msg string, err error, fields ...string) {
	p.logger.Fatal(msg, err, fields...)
}
