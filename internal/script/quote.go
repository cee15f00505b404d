package script

import "strings"

// ShellQuote wraps s in single quotes for safe literal embedding in the
// generated script. Embedded single quotes are closed, escaped, and
// reopened ('\''), the only escape the POSIX shell permits inside single
// quotes.
func ShellQuote(s string) string {
	if s == "" {
		return "''"
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// commentSafe flattens control characters so arbitrary paths cannot break
// out of a generated comment line.
func commentSafe(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == 0 {
			return ' '
		}
		return r
	}, s)
}
