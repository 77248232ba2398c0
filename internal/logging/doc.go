// Package logging builds the slog loggers used by padhost.
//
// Console output is one line per record with the component and controller
// family lifted into the prefix; JSON output uses "ts" and lowercase levels.
// Packages that accept a *slog.Logger treat nil as a no-op logger through
// NewComponentLogger.
package logging
