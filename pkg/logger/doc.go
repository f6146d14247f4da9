// Package logger builds the structured slog logger used by the checker CLI.
// Development runs get human-readable text output, production runs get JSON
// so CI log collectors can parse each attempt.
package logger
