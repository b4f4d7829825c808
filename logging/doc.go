// Package logging builds the log/slog loggers used by the store and the fx application.
// Output is JSON by default; set LoggerConfig.Format to "text" for key=value lines.
package logging
