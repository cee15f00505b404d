package script

import (
	"fmt"
	"strings"

	"shellac/internal/config"
	"shellac/internal/track"
)

// emitFunctionList writes the track function names as a continued word
// list for a shell for-loop, one per line in ascending identifier order.
func emitFunctionList(b *strings.Builder, tracks []track.Track) {
	b.WriteString("\tfor fn in \\\n")
	for i, t := range tracks {
		b.WriteString("\t\t")
		b.WriteString(t.FuncName())
		if i < len(tracks)-1 {
			b.WriteString(" \\")
		}
		b.WriteByte('\n')
	}
	b.WriteString("\tdo\n")
}

// emitConcatenate writes the aggregate that streams every track's
// normalized audio back-to-back as one uninterrupted canonical stream. A
// track that fails to decode contributes nothing and its siblings still
// run.
func emitConcatenate(b *strings.Builder, tracks []track.Track) {
	b.WriteString("# Stream all tracks back-to-back as one canonical raw PCM stream.\n")
	b.WriteString("concatenate_tracks() {\n")
	b.WriteString("\tlocal fn\n")
	emitFunctionList(b, tracks)
	b.WriteString("\t\tif ! \"$fn\"; then\n")
	b.WriteString("\t\t\tshellac_log warn \"concatenate_tracks: $fn produced no audio\"\n")
	b.WriteString("\t\tfi\n")
	b.WriteString("\tdone\n")
	b.WriteString("}\n")
}

// emitItemize writes the aggregate that encodes every track to its own
// tagged MP3. Each iteration reads the track's eight metadata fields
// through the accessor protocol, normalizes the text fields, derives the
// output name from "<number> <artist> <title>", and pipes the track's
// audio into the encoder.
func emitItemize(b *strings.Builder, tracks []track.Track) {
	b.WriteString("# Encode each track to its own tagged MP3 file.\n")
	b.WriteString("itemize_tracks() {\n")
	b.WriteString("\tlocal fn num genre artist album year title comment image out\n")
	emitFunctionList(b, tracks)
	b.WriteString("\t\tnum=$(\"$fn\" -n)\n")
	b.WriteString("\t\tgenre=$(shellac_clean \"$(\"$fn\" -g)\")\n")
	b.WriteString("\t\tartist=$(shellac_clean \"$(\"$fn\" -a)\")\n")
	b.WriteString("\t\talbum=$(shellac_clean \"$(\"$fn\" -b)\")\n")
	b.WriteString("\t\tyear=$(shellac_clean \"$(\"$fn\" -y)\")\n")
	b.WriteString("\t\ttitle=$(shellac_clean \"$(\"$fn\" -t)\")\n")
	b.WriteString("\t\tcomment=$(shellac_clean \"$(\"$fn\" -c)\")\n")
	b.WriteString("\t\timage=$(\"$fn\" -i)\n")
	b.WriteString("\t\tout=\"$(shellac_slugify \"$(shellac_transliterate \"$num $artist $title\")\").mp3\"\n")
	b.WriteString("\t\tif ! \"$fn\" | shellac_encode_mp3 \"$genre\" \"$artist\" \"$album\" \"$year\" \"$num\" \"$title\" \"$comment\" \"$image\" \"$out\"; then\n")
	b.WriteString("\t\t\tshellac_log error \"itemize_tracks: failed: $out\"\n")
	b.WriteString("\t\tfi\n")
	b.WriteString("\tdone\n")
	b.WriteString("}\n")
}

// exampleInvocations returns the commented epilogue examples.
func exampleInvocations() string {
	var b strings.Builder
	b.WriteString("# Example invocations. Uncomment what you need, or source this file\n")
	b.WriteString("# and call the functions yourself.\n")
	b.WriteString("#\n")
	b.WriteString("# Play the whole album:\n")
	b.WriteString("#concatenate_tracks | play \"${SHELLAC_RAWFMT[@]}\" -\n")
	b.WriteString("#\n")
	b.WriteString("# Encode the whole album into one tagged file:\n")
	b.WriteString("#concatenate_tracks | shellac_encode_mp3 \"$(shellac_clean \"$GENRE\")\" \\\n")
	b.WriteString("#\t\"$(shellac_clean \"$ARTIST\")\" \"$(shellac_clean \"$ALBUM\")\" \\\n")
	b.WriteString("#\t\"$(shellac_clean \"$YEAR\")\" 001 \"$(shellac_clean \"$ALBUM\")\" \\\n")
	b.WriteString("#\t\"$(shellac_clean \"$COMMENT\")\" \"$IMAGE\" album.mp3\n")
	b.WriteString("#\n")
	b.WriteString("# Encode every track to its own tagged file:\n")
	b.WriteString("#itemize_tracks\n")
	return b.String()
}

// emitTags writes the shared, operator-editable tag variables.
func emitTags(b *strings.Builder, tags config.Tags) {
	b.WriteString("# Shared tag metadata. Track functions read these at call time, so\n")
	b.WriteString("# edits here (or between invocations) retag without regenerating.\n")
	fmt.Fprintf(b, "GENRE=%s\n", ShellQuote(tags.Genre))
	fmt.Fprintf(b, "ARTIST=%s\n", ShellQuote(tags.Artist))
	fmt.Fprintf(b, "ALBUM=%s\n", ShellQuote(tags.Album))
	fmt.Fprintf(b, "YEAR=%s\n", ShellQuote(tags.Year))
	fmt.Fprintf(b, "COMMENT=%s\n", ShellQuote(tags.Comment))
	fmt.Fprintf(b, "IMAGE=%s\n", ShellQuote(tags.Image))
}
