// SPDX-License-Identifier: MIT
package validate

import (
	"errors"
	"fmt"
	"strings"
)

// LogLevel is a --log-level value accepted by the CLI.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

var logLevels = []string{
	string(LogLevelDebug),
	string(LogLevelInfo),
	string(LogLevelWarn),
	string(LogLevelError),
}

// ErrInvalidLogLevel classifies a rejected --log-level value.
var ErrInvalidLogLevel = errors.New("invalid log level")

func (l LogLevel) String() string {
	return string(l)
}

// ParseLogLevel accepts a level name in any case, surrounded by whitespace or not.
func ParseLogLevel(s string) (LogLevel, error) {
	name := strings.ToLower(strings.TrimSpace(s))

	v := New()
	v.OneOf("log-level", name, logLevels)
	if err := v.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidLogLevel, err)
	}
	return LogLevel(name), nil
}
