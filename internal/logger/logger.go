package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"
	"github.com/turbot/csvsplit/internal/constants"
)

// LogLevelOff is above every real level so nothing is emitted
const LogLevelOff = slog.Level(100)

func Initialize() {
	logger := CsvsplitLogger(os.Stderr)
	slog.SetDefault(logger)

	slog.Info("Csvsplit CLI",
		"app version", viper.GetString(constants.ConfigKeyVersion),
		"log level", os.Getenv(constants.EnvLogLevel))
}

// CsvsplitLogger returns a JSON logger writing to w, at the level set by the log level env var
func CsvsplitLogger(w io.Writer) *slog.Logger {
	level := getLogLevel()
	if level == LogLevelOff {
		return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	}

	handlerOptions := &slog.HandlerOptions{
		Level: level,
	}

	return slog.New(slog.NewJSONHandler(w, handlerOptions)).With("source", "cli")
}

func getLogLevel() slog.Leveler {
	levelEnv := os.Getenv(constants.EnvLogLevel)

	switch strings.ToLower(levelEnv) {
	case constants.LogLevelDebug:
		return slog.LevelDebug
	case constants.LogLevelInfo:
		return slog.LevelInfo
	case constants.LogLevelWarn:
		return slog.LevelWarn
	case constants.LogLevelError:
		return slog.LevelError
	case constants.LogLevelOff:
		return LogLevelOff
	default:
		return LogLevelOff
	}
}
