// Package logging assembles the structured slog loggers used across
// coresheet.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and provides a no-op logger for tests and wiring code that
// cannot fail. Prefer these constructors over hand-rolled slog setup so
// every component emits log lines with the same shape.
package logging
