package textutil

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Table maps Unicode sequences to their curated ASCII spellings. Entries are
// applied before generic decomposition, which would otherwise drop them.
type Table map[string]string

// DefaultTable returns the built-in substitution table. Callers must not
// mutate the returned map; take a Clone first.
func DefaultTable() Table {
	return defaultTable
}

// Clone returns an independent copy of the table.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// Merge overlays extra entries onto a copy of the table and returns it.
func (t Table) Merge(extra map[string]string) Table {
	out := t.Clone()
	for k, v := range extra {
		if k == "" {
			continue
		}
		out[k] = v
	}
	return out
}

// SortedKeys returns the table keys in lexicographic order so that renderers
// emitting the table (for example as sed rules) stay deterministic.
func (t Table) SortedKeys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var defaultTable = Table{
	// Quotation marks and dashes.
	"‘": "'", "’": "'", "‚": "'", "‛": "'",
	"“": "\"", "”": "\"", "„": "\"", "‟": "\"",
	"«": "\"", "»": "\"",
	"–": "-", "—": "-", "―": "-",
	"…": "...",

	// Arithmetic signs.
	"÷": "/", "±": "+/-", "×": "x",

	// Superscript digits.
	"¹": "1", "²": "2", "³": "3",

	// Germanic and Nordic letters the generic pass cannot decompose.
	"Ä": "Ae", "ä": "ae",
	"Æ": "Ae", "æ": "ae",
	"Ø": "oe", "ø": "oe",
	"ß": "ss",
	"Þ": "Th", "þ": "th",
	"Ð": "D", "ð": "d",
	"Ł": "L", "ł": "l",
	"Đ": "D", "đ": "d",
	"Œ": "Oe", "œ": "oe",
}

// Placeholder tokens shielding characters the generic pass would mangle.
// iconv-style transliteration turns untranslatable input into question
// marks, so literal '?' and ':' are parked here and restored afterwards.
const (
	colonToken = "@CLN@"
	qmarkToken = "@QST@"
)

// Transliterator converts arbitrary Unicode text into ASCII using a curated
// substitution table followed by generic NFKD decomposition.
type Transliterator struct {
	table    Table
	replacer *strings.Replacer
}

// NewTransliterator builds a Transliterator over the given table. A nil
// table selects the defaults.
func NewTransliterator(table Table) *Transliterator {
	if table == nil {
		table = defaultTable
	}
	pairs := make([]string, 0, len(table)*2)
	for _, k := range table.SortedKeys() {
		pairs = append(pairs, k, table[k])
	}
	return &Transliterator{table: table, replacer: strings.NewReplacer(pairs...)}
}

// Table returns the substitution table the transliterator was built with.
func (t *Transliterator) Table() Table {
	return t.table
}

// Transliterate maps s to ASCII. Colons and question marks survive
// unchanged, curated entries get their table spelling, everything else goes
// through NFKD decomposition with combining marks removed. Characters still
// outside ASCII after that are dropped. The result is stable under repeated
// application for ASCII input.
func (t *Transliterator) Transliterate(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, ":", colonToken)
	s = strings.ReplaceAll(s, "?", qmarkToken)
	s = t.replacer.Replace(s)
	s = asciiFold(s)
	// Any question mark remaining here is a replacement artifact, not input.
	s = strings.ReplaceAll(s, "?", "")
	s = strings.ReplaceAll(s, colonToken, ":")
	s = strings.ReplaceAll(s, qmarkToken, "?")
	return s
}

var foldTransform = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// asciiFold decomposes s and keeps the ASCII subset. Transform errors fall
// back to filtering the input directly so arbitrary bytes never panic.
func asciiFold(s string) string {
	folded, _, err := transform.String(foldTransform, s)
	if err != nil {
		folded = s
	}
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if r < utf8.RuneSelf {
			b.WriteRune(r)
		}
	}
	return b.String()
}

var defaultTransliterator = NewTransliterator(nil)

// Transliterate runs the default-table pipeline.
func Transliterate(s string) string {
	return defaultTransliterator.Transliterate(s)
}

var (
	emptyBrackets = regexp.MustCompile(`\(\s*\)|\[\s*\]|\{\s*\}`)
	spaceRuns     = regexp.MustCompile(`\s{2,}`)
)

// Debrace removes bracket pairs left empty after transliteration, such as an
// emptied "(feat. )", then squeezes and trims whitespace. Removal repeats
// until stable so nested empties collapse too.
func Debrace(s string) string {
	for {
		next := emptyBrackets.ReplaceAllString(s, "")
		if next == s {
			break
		}
		s = next
	}
	s = spaceRuns.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
