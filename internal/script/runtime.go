package script

import (
	_ "embed"
	"strconv"
	"strings"
	"text/template"

	"shellac/internal/textutil"
)

//go:embed runtime.sh.tmpl
var runtimeText string

var runtimeTemplate = template.Must(template.New("runtime").Parse(runtimeText))

// runtimeData feeds the preamble template. All string fields are already
// shell-quoted.
type runtimeData struct {
	Version     string
	FirstNumber string
	LastNumber  string
	TrackCount  int
	Sox         string
	Soxi        string
	FFmpeg      string
	FFprobe     string
	Lame        string
	Iconv       string
	Gain        string
	TempDir     string
	SedRules    []string
}

func renderRuntime(b *strings.Builder, opts Options) error {
	tracks := opts.Tracks
	data := runtimeData{
		Version:     opts.Version,
		FirstNumber: tracks[0].Number(),
		LastNumber:  tracks[len(tracks)-1].Number(),
		TrackCount:  len(tracks),
		Sox:         ShellQuote(opts.Tools.Sox),
		Soxi:        ShellQuote(opts.Tools.Soxi),
		FFmpeg:      ShellQuote(opts.Tools.FFmpeg),
		FFprobe:     ShellQuote(opts.Tools.FFprobe),
		Lame:        ShellQuote(opts.Tools.Lame),
		Iconv:       ShellQuote(opts.Tools.Iconv),
		Gain:        ShellQuote(formatGain(opts.GainDB)),
		TempDir:     tempDirValue(opts.TempDir),
		SedRules:    sedRules(opts.Transliterator.Table()),
	}
	return runtimeTemplate.Execute(b, data)
}

func formatGain(db float64) string {
	return strconv.FormatFloat(db, 'f', -1, 64)
}

// tempDirValue bakes a configured directory in verbatim, otherwise defers
// to the runtime environment.
func tempDirValue(dir string) string {
	if dir == "" {
		return `"${TMPDIR:-/tmp}"`
	}
	return ShellQuote(dir)
}

// sedRules renders the substitution table as shell-quoted sed expressions
// in deterministic key order.
func sedRules(table textutil.Table) []string {
	keys := table.SortedKeys()
	rules := make([]string, 0, len(keys))
	for _, from := range keys {
		rule := "s/" + sedEscapePattern(from) + "/" + sedEscapeReplacement(table[from]) + "/g"
		rules = append(rules, ShellQuote(rule))
	}
	return rules
}

var sedPatternEscaper = strings.NewReplacer(
	`\`, `\\`,
	`/`, `\/`,
	`.`, `\.`,
	`*`, `\*`,
	`[`, `\[`,
	`]`, `\]`,
	`^`, `\^`,
	`$`, `\$`,
)

var sedReplacementEscaper = strings.NewReplacer(
	`\`, `\\`,
	`/`, `\/`,
	`&`, `\&`,
)

func sedEscapePattern(s string) string {
	return sedPatternEscaper.Replace(s)
}

func sedEscapeReplacement(s string) string {
	return sedReplacementEscaper.Replace(s)
}
