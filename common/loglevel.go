package common

import (
	"fmt"
	"strings"
)

// LogLevel represents the logging level
type LogLevel int

const (
	// DisabledLevel disables all logging. Use this to turn off logging completely.
	DisabledLevel LogLevel = iota

	// DebugLevel sets the logging level to debug. This level is used for detailed pipeline steps.
	DebugLevel

	// InfoLevel sets the logging level to info. Use this for general progress of a run.
	InfoLevel

	// WarnLevel sets the logging level to warn. This level is used for recoverable surprises, such as an unexpected content type.
	WarnLevel

	// ErrorLevel sets the logging level to error. This level is used for failures that end the run.
	ErrorLevel
)

var levelNames = map[LogLevel]string{
	DisabledLevel: "disabled",
	DebugLevel:    "debug",
	InfoLevel:     "info",
	WarnLevel:     "warn",
	ErrorLevel:    "error",
}

func (l LogLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LogLevel(%d)", int(l))
}

// ParseLogLevel converts a level name such as "info" into a LogLevel.
// Matching is case-insensitive; "warning" and "off" are accepted as aliases.
func ParseLogLevel(name string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "disabled", "off", "none":
		return DisabledLevel, nil
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	}
	return DisabledLevel, fmt.Errorf("unknown log level %q", name)
}
