package script

import (
	"fmt"
	"strings"

	"shellac/internal/track"
)

// MetadataFlags are the accessor flags every generated track function
// answers, in emission order: source path, genre, artist, album, year,
// track number, title, comment, cover image.
var MetadataFlags = []string{"-f", "-g", "-a", "-b", "-y", "-n", "-t", "-c", "-i"}

// emitTrackFunction writes one self-describing track function. With no
// arguments it decodes, normalizes, and streams canonical raw PCM; with a
// single metadata flag it prints one field instead. Intrinsic fields (path,
// number, title) are baked in at generation time; the tag fields read the
// shared script variables so the operator can retag between runs.
func emitTrackFunction(b *strings.Builder, t track.Track, title string) {
	name := t.FuncName()
	qpath := ShellQuote(t.Path)

	fmt.Fprintf(b, "# Track %s: %s\n", t.Number(), commentSafe(title))
	fmt.Fprintf(b, "# source: %s\n", commentSafe(t.Path))
	fmt.Fprintf(b, "%s() {\n", name)
	b.WriteString("\tcase \"${1-}\" in\n")
	fmt.Fprintf(b, "\t-f) printf '%%s\\n' %s; return 0 ;;\n", qpath)
	b.WriteString("\t-g) printf '%s\\n' \"$GENRE\"; return 0 ;;\n")
	b.WriteString("\t-a) printf '%s\\n' \"$ARTIST\"; return 0 ;;\n")
	b.WriteString("\t-b) printf '%s\\n' \"$ALBUM\"; return 0 ;;\n")
	b.WriteString("\t-y) printf '%s\\n' \"$YEAR\"; return 0 ;;\n")
	fmt.Fprintf(b, "\t-n) printf '%%s\\n' %s; return 0 ;;\n", ShellQuote(t.Number()))
	fmt.Fprintf(b, "\t-t) printf '%%s\\n' %s; return 0 ;;\n", ShellQuote(title))
	b.WriteString("\t-c) printf '%s\\n' \"$COMMENT\"; return 0 ;;\n")
	b.WriteString("\t-i) printf '%s\\n' \"$IMAGE\"; return 0 ;;\n")
	fmt.Fprintf(b, "\t?*) shellac_log error \"%s: unknown option: $1\"; return 2 ;;\n", name)
	b.WriteString("\tesac\n")
	b.WriteString("\tlocal raw status\n")
	fmt.Fprintf(b, "\traw=$(mktemp \"$SHELLAC_TMPDIR/shellac_%s.XXXXXX\") || return 1\n", t.Number())
	b.WriteString("\ttrap 'rm -f \"$raw\"' EXIT HUP INT TERM\n")
	fmt.Fprintf(b, "\tif ! shellac_decode %s \"$raw\"; then\n", qpath)
	fmt.Fprintf(b, "\t\tshellac_log error \"%s: decode failed\"\n", name)
	b.WriteString("\t\trm -f \"$raw\"\n")
	b.WriteString("\t\ttrap - EXIT HUP INT TERM\n")
	b.WriteString("\t\treturn 1\n")
	b.WriteString("\tfi\n")
	b.WriteString("\tshellac_normalize \"$raw\"\n")
	b.WriteString("\tstatus=$?\n")
	b.WriteString("\trm -f \"$raw\"\n")
	b.WriteString("\ttrap - EXIT HUP INT TERM\n")
	b.WriteString("\treturn \"$status\"\n")
	b.WriteString("}\n")
}
