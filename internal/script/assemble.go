package script

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"shellac/internal/config"
	"shellac/internal/textutil"
	"shellac/internal/track"
)

// DocSource supplies reference documentation for an external command,
// appended to the script as a commented appendix. The lookup machinery
// (man-page scraping and the like) lives outside this package.
type DocSource interface {
	Lookup(command string) (string, error)
}

// Options carries everything one generation run needs. Tracks must already
// be assigned; the assembler never reorders them.
type Options struct {
	Tracks         []track.Track
	Transliterator *textutil.Transliterator
	Tools          config.Tools
	Tags           config.Tags
	GainDB         float64
	TempDir        string
	Version        string
	// Docs is optional; nil omits the reference appendix.
	Docs DocSource
}

// Assemble builds the complete script and writes it to w in one piece:
// runtime preamble, per-track functions, the two aggregates, and the
// epilogue, separated by blank lines. Output is deterministic for
// identical options and is only written once assembly fully succeeded.
func Assemble(w io.Writer, opts Options) error {
	if len(opts.Tracks) == 0 {
		return errors.New("no tracks to assemble")
	}
	if opts.Transliterator == nil {
		opts.Transliterator = textutil.NewTransliterator(nil)
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}

	var b strings.Builder

	if err := renderRuntime(&b, opts); err != nil {
		return fmt.Errorf("render runtime helpers: %w", err)
	}

	for _, t := range opts.Tracks {
		b.WriteByte('\n')
		emitTrackFunction(&b, t, deriveTitle(opts.Transliterator, t.Path))
	}

	b.WriteByte('\n')
	emitConcatenate(&b, opts.Tracks)

	b.WriteByte('\n')
	emitItemize(&b, opts.Tracks)

	b.WriteByte('\n')
	emitTags(&b, opts.Tags)

	b.WriteByte('\n')
	b.WriteString(exampleInvocations())

	if opts.Docs != nil {
		if err := appendReference(&b, opts); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write script: %w", err)
	}
	return nil
}

// deriveTitle produces the ASCII display title baked into a track's -t
// accessor.
func deriveTitle(tr *textutil.Transliterator, path string) string {
	return tr.Transliterate(textutil.TitleFromPath(path))
}

// appendReference asks the DocSource about each distinct external tool and
// appends the answers as comments.
func appendReference(b *strings.Builder, opts Options) error {
	tools := opts.Tools
	for _, command := range []string{tools.Sox, tools.FFmpeg, tools.Lame} {
		text, err := opts.Docs.Lookup(command)
		if err != nil {
			return fmt.Errorf("reference lookup for %q: %w", command, err)
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		b.WriteByte('\n')
		fmt.Fprintf(b, "# Reference: %s\n", commentSafe(command))
		for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
			fmt.Fprintf(b, "# %s\n", commentSafe(line))
		}
	}
	return nil
}
