package logger

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/go-home-io/vehicle/plugins/common"
)

// Default console logger.
type consoleLogger struct {
	out io.Writer
}

// NewConsoleLogger constructs a new console logger.
// Colored standard output is used if writer is nil.
func NewConsoleLogger(out io.Writer) common.ILoggerProvider {
	if nil == out {
		out = color.Output
	}

	return &consoleLogger{
		out: out,
	}
}

// Debug prints debug level message.
func (p *consoleLogger) Debug(msg string, fields ...string) {
	p.output(msg, withFields(fields...), color.FgCyan)
}

// Info prints info level message.
func (p *consoleLogger) Info(msg string, fields ...string) {
	p.output(msg, withFields(fields...), color.FgGreen)
}

// Warn prints warning level message.
func (p *consoleLogger) Warn(msg string, fields ...string) {
	p.output(msg, withFields(fields...), color.FgYellow)
}

// Error prints error level message.
func (p *consoleLogger) Error(msg string, err error, fields ...string) {
	p.output(msg, withFields(withError(err, fields)...), color.FgRed)
}

// Fatal prints fatal level message and exits.
func (p *consoleLogger) Fatal(msg string, err error, fields ...string) {
	p.output(msg, withFields(withError(err, fields)...), color.FgRed)
	os.Exit(1)
}

// Helper method to add generic fields to the output.
func withFields(fields ...string) map[string]string {
	fLen := len(fields)
	result := make(map[string]string, int(fLen/2))
	for ii := 0; ii < fLen; ii += 2 {
		if ii+1 >= fLen {
			break
		}

		result[fields[ii]] = fields[ii+1]
	}

	return result
}

// Appends error field.
func withError(err error, fields []string) []string {
	if nil == err {
		return fields
	}

	return append(fields, common.LogErrorToken, err.Error())
}

// Prepares final string.
func (p *consoleLogger) output(msg string, fields map[string]string, c color.Attribute) {
	newM := fmt.Sprintf("%s   %s", time.Now().Local().Format(time.StampMilli), msg)

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		newM = fmt.Sprintf("%s\n          %s: %s", newM, k, fields[k])
	}

	msgC := color.New(c)
	//noinspection GoUnhandledErrorResult
	msgC.Fprintln(p.out, newM) // nolint: gosec
}
