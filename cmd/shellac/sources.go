package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"shellac/internal/input"
)

// sourceFlags selects where the ordered track paths come from. At most one
// may be set; with none set the command reads a NUL-delimited stream from
// standard input (the shape `find -print0` produces).
type sourceFlags struct {
	directory string
	file      string
	playlist  string
}

type generateFlags struct {
	sourceFlags
	offset int
}

func bindSourceFlags(cmd *cobra.Command, flags *sourceFlags) {
	cmd.Flags().StringVarP(&flags.directory, "directory", "d", "", "Use every audio file in the directory, sorted by name")
	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "Use a single audio file")
	cmd.Flags().StringVarP(&flags.playlist, "playlist", "m", "", "Read paths from an m3u playlist")
}

func collectPaths(cmd *cobra.Command, flags sourceFlags) ([]string, error) {
	directory := strings.TrimSpace(flags.directory)
	file := strings.TrimSpace(flags.file)
	playlist := strings.TrimSpace(flags.playlist)

	set := 0
	for _, v := range []string{directory, file, playlist} {
		if v != "" {
			set++
		}
	}
	if set > 1 {
		return nil, errors.New("--directory, --file, and --playlist are mutually exclusive")
	}

	switch {
	case directory != "":
		return input.ScanDirectory(directory)
	case file != "":
		return input.SinglePath(file)
	case playlist != "":
		return input.ReadPlaylist(playlist)
	default:
		return input.ReadNulStream(cmd.InOrStdin())
	}
}
