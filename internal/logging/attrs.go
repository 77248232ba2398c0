package logging

import "log/slog"

// Attribute keys shared by every package that logs about controller options.
const (
	FieldComponent  = "component"
	FieldFamily     = "family"
	FieldDeviceType = "device_type"
	FieldField      = "field"
	FieldValue      = "value"
	FieldPath       = "path"
)

func Int(key string, value int) slog.Attr { return slog.Int(key, value) }

func String(key string, value string) slog.Attr { return slog.String(key, value) }

// Error returns the attribute under the "error" key. A nil error is logged as
// "<nil>" rather than dropped.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.Any("error", err)
}

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// NewComponentLogger tags logger with a component name. A nil logger is
// replaced by NewNop.
func NewComponentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	return logger.With(String(FieldComponent, component))
}
