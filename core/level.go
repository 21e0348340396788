package core

import (
	"fmt"
	"strings"
)

// Level represents the severity of a log record.
//
// Real levels are ordered ascending from TraceLevel to FatalLevel and each
// occupies one bit position in an enablement mask. OffLevel and UnsetLevel
// are sentinels: Off suppresses everything (no real level satisfies
// lvl >= Off) and Unset means "inherit from the nearest ancestor with an
// explicit level". Sentinels never contribute bits to a mask.
type Level int8

const (
	// TraceLevel for very fine-grained diagnostic output
	TraceLevel Level = iota
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages (default)
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// FatalLevel for unrecoverable error messages
	FatalLevel

	// OffLevel suppresses all output when set as a logger's level
	OffLevel
	// UnsetLevel marks a logger as inheriting its level from an ancestor
	UnsetLevel
)

// NumLevels is the number of real (maskable) levels.
const NumLevels = int(OffLevel)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "TRACE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	case OffLevel:
		return "OFF"
	case UnsetLevel:
		return "UNSET"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether l is a real level or one of the two sentinels.
func (l Level) Valid() bool {
	return l >= TraceLevel && l <= UnsetLevel
}

// ParseLevel converts a string to a Level. Unknown tokens are rejected with
// an error rather than coerced to a default.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return TraceLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "FATAL":
		return FatalLevel, nil
	case "OFF":
		return OffLevel, nil
	case "UNSET", "INHERIT":
		return UnsetLevel, nil
	default:
		return UnsetLevel, fmt.Errorf("unknown level %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("invalid level %d", int8(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
