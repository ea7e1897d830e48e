// Package log provides functionality for logging commands and errors
package log

import (
	"log/slog"
	"strings"
)

// LogLevel represents the type and severity of a log message.
// Lower values are more important; a logger at level L records everything <= L.
type LogLevel int

const (
	LevelCommand LogLevel = iota
	LevelError
	LevelWarn
	LevelInfo
	LevelDebug
)

type levelInfo struct {
	name      string
	slogLevel slog.Level
}

// Command records are emitted at slog INFO so they survive the command handler's threshold.
var levels = map[LogLevel]levelInfo{
	LevelCommand: {"COMMAND", slog.LevelInfo},
	LevelError:   {"ERROR", slog.LevelError},
	LevelWarn:    {"WARN", slog.LevelWarn},
	LevelInfo:    {"INFO", slog.LevelInfo},
	LevelDebug:   {"DEBUG", slog.LevelDebug},
}

func (l LogLevel) String() string {
	if info, ok := levels[l]; ok {
		return info.name
	}
	return "UNKNOWN"
}

// ParseLevel maps a config value such as "debug" to a LogLevel.
// Unknown values fall back to LevelInfo.
func ParseLevel(s string) LogLevel {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "warning") {
		return LevelWarn
	}
	for level, info := range levels {
		if strings.EqualFold(s, info.name) {
			return level
		}
	}
	return LevelInfo
}

func (l LogLevel) toSlogLevel() slog.Level {
	if info, ok := levels[l]; ok {
		return info.slogLevel
	}
	return slog.LevelInfo
}
