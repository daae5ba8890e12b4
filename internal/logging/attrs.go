package logging

import (
	"log/slog"
)

// Standardized structured logging keys.
const (
	// FieldComponent tags log lines with the emitting component name.
	FieldComponent = "component"
	// FieldKey is the storage key a persistence operation touched.
	FieldKey = "key"
	// FieldArtifact is the path of a rendered print artifact.
	FieldArtifact = "artifact"
)

type Attr = slog.Attr

func Any(key string, value any) Attr { return slog.Any(key, value) }

func Bool(key string, value bool) Attr { return slog.Bool(key, value) }

func Int(key string, value int) Attr { return slog.Int(key, value) }

func String(key string, value string) Attr { return slog.String(key, value) }

func Error(err error) Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.Any("error", err)
}

// WithComponent returns a logger tagged with a component name.
func WithComponent(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	return logger.With(String(FieldComponent, component))
}
