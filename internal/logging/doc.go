// Package logging assembles the structured slog loggers used across shellac.
//
// All log output goes to stderr: standard output is reserved for the
// generated script, and mixing the two would corrupt the artifact. The
// console handler colorizes when stderr is a terminal; the JSON handler is
// for machine consumption. A no-op logger is provided for tests.
package logging
