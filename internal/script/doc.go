// Package script assembles the generated batch script: a runtime helper
// preamble, one self-describing function per track, two aggregate functions
// (concatenate and itemize), and an epilogue with operator-editable tag
// defaults and example invocations.
//
// Generation is pure text assembly. The script's runtime behavior (the
// two-tier decode fallback, scoped temp-file cleanup, tag normalization)
// is embedded as shell code; nothing is executed at generation time and the
// sole side effect is the bytes written to the supplied writer.
package script
