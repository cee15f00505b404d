// Package input resolves the supported input modes into an ordered list of
// media file paths: directory enumeration, m3u-style playlists, a single
// path, and NUL-terminated path streams on standard input.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// mediaExtensions gates directory enumeration. Other modes take paths as
// given; whether a file really is decodable audio is decided at script
// runtime by the decode probes.
var mediaExtensions = map[string]struct{}{
	".flac": {},
	".mp3":  {},
	".ogg":  {},
	".opus": {},
	".wav":  {},
	".m4a":  {},
	".aac":  {},
	".wma":  {},
	".aiff": {},
	".aif":  {},
	".ape":  {},
	".wv":   {},
	".mpc":  {},
	".shn":  {},
}

// ScanDirectory lists media files directly inside dir in lexicographic
// order. Subdirectories are not descended into.
func ScanDirectory(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %q: %w", dir, err)
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if _, ok := mediaExtensions[ext]; !ok {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no media files found in %q", dir)
	}
	return paths, nil
}

// ReadPlaylist parses an m3u-style playlist: one path per line, blank lines
// and comment lines starting with '#' skipped, relative entries resolved
// against the playlist's own directory.
func ReadPlaylist(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open playlist %q: %w", path, err)
	}
	defer file.Close()

	base := filepath.Dir(path)
	var paths []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !filepath.IsAbs(line) {
			line = filepath.Join(base, line)
		}
		paths = append(paths, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read playlist %q: %w", path, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("playlist %q contains no entries", path)
	}
	return paths, nil
}

// SinglePath validates one explicitly given file path.
func SinglePath(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("file does not exist: %s", path)
		}
		return nil, fmt.Errorf("inspect file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	return []string{path}, nil
}

// ReadNulStream reads NUL-terminated paths from r, in order, skipping empty
// records. A trailing record without a terminator is accepted.
func ReadNulStream(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(splitNul)
	var paths []string
	for scanner.Scan() {
		p := scanner.Text()
		if p == "" {
			continue
		}
		paths = append(paths, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read path stream: %w", err)
	}
	if len(paths) == 0 {
		return nil, errors.New("no paths received on standard input")
	}
	return paths, nil
}

func splitNul(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	for i, b := range data {
		if b == 0 {
			return i + 1, data[:i], nil
		}
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
