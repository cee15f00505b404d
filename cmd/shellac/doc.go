// Package main hosts the shellac CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into script
// generation runs, track previews, dependency checks, and configuration
// scaffolding. The generated script is the only thing written to standard
// output; diagnostics and logs go to standard error so the output can be
// redirected straight into a file.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
