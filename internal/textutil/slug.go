package textutil

import (
	"path/filepath"
	"strings"
	"unicode"
)

// SlugMaxLen caps slug length in runes. Longer results are cut and any
// trailing underscore the cut exposes is trimmed again.
const SlugMaxLen = 200

// Slugify converts s into a lowercase token safe for filenames: only ASCII
// letters and digits survive, every maximal run of anything else becomes a
// single underscore, edge underscores are trimmed, and the result is capped
// at SlugMaxLen characters. Slugify is idempotent. Run input through
// Transliterate first when non-ASCII letters should fold instead of
// separating.
func Slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pendingSep := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
			continue
		}
		pendingSep = true
	}
	out := b.String()
	if runes := []rune(out); len(runes) > SlugMaxLen {
		out = strings.TrimRight(string(runes[:SlugMaxLen]), "_")
	}
	return out
}

// TitleFromPath derives a display title from a file path: the final path
// element without its extension, underscores turned into spaces, edge
// whitespace trimmed, and the first letter of the string and of every
// following word upcased. It never touches the filesystem.
func TitleFromPath(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.TrimSpace(strings.ReplaceAll(name, "_", " "))

	var b strings.Builder
	b.Grow(len(name))
	startOfWord := true
	for _, r := range name {
		if startOfWord {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(r)
		}
		startOfWord = r == ' '
	}
	return b.String()
}
