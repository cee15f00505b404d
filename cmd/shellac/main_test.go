package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"shellac/internal/track"
)

func runCLI(t *testing.T, args []string, stdin io.Reader) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	if stdin != nil {
		cmd.SetIn(stdin)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("output missing %q:\n%s", needle, haystack)
	}
}

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[script]\ngain_db = -3.0\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func writeMediaFiles(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("write media file: %v", err)
		}
	}
	return dir
}

func TestGenerateFromDirectory(t *testing.T) {
	cfg := writeTestConfig(t)
	dir := writeMediaFiles(t, "01 - Song One.flac", "02 - Song Two.mp3")

	out, _, err := runCLI(t, []string{"-c", cfg, "-d", dir}, nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	requireContains(t, out, "#!/usr/bin/env bash")
	requireContains(t, out, "track_001()")
	requireContains(t, out, "track_002()")
	requireContains(t, out, "concatenate_tracks()")
	requireContains(t, out, "itemize_tracks()")
	requireContains(t, out, "SHELLAC_GAIN='-3'")
}

func TestGenerateSingleFileWithOffset(t *testing.T) {
	cfg := writeTestConfig(t)
	dir := writeMediaFiles(t, "side-a.wav")

	out, _, err := runCLI(t, []string{"-c", cfg, "-f", filepath.Join(dir, "side-a.wav"), "-n", "7"}, nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	requireContains(t, out, "track_007()")
	if strings.Contains(out, "track_001()") {
		t.Fatalf("offset ignored, found track_001:\n%s", out)
	}
}

func TestGenerateFromStdinStream(t *testing.T) {
	cfg := writeTestConfig(t)
	stdin := bytes.NewBufferString("/music/a.flac\x00/music/b.flac\x00")

	out, _, err := runCLI(t, []string{"-c", cfg}, stdin)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	requireContains(t, out, "track_001()")
	requireContains(t, out, "track_002()")
	requireContains(t, out, "'/music/a.flac'")
}

func TestSourceFlagsMutuallyExclusive(t *testing.T) {
	cfg := writeTestConfig(t)
	dir := writeMediaFiles(t, "a.flac")

	_, _, err := runCLI(t, []string{"-c", cfg, "-d", dir, "-f", filepath.Join(dir, "a.flac")}, nil)
	if err == nil {
		t.Fatal("expected an error for conflicting source flags")
	}
	if !strings.Contains(err.Error(), "mutually exclusive") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRootRejectsPositionalArgs(t *testing.T) {
	cfg := writeTestConfig(t)

	_, _, err := runCLI(t, []string{"-c", cfg, "stray-argument"}, nil)
	if err == nil {
		t.Fatal("expected an error for positional arguments")
	}
}

func TestGenerateTrackLimit(t *testing.T) {
	cfg := writeTestConfig(t)
	dir := writeMediaFiles(t, "a.flac", "b.flac")

	_, _, err := runCLI(t, []string{"-c", cfg, "-d", dir, "-n", "999"}, nil)
	if !errors.Is(err, track.ErrTrackLimit) {
		t.Fatalf("expected track limit error, got %v", err)
	}
}

func TestTracksCommandPreview(t *testing.T) {
	cfg := writeTestConfig(t)
	dir := writeMediaFiles(t, "my_song.flac")

	out, _, err := runCLI(t, []string{"-c", cfg, "tracks", "-d", dir}, nil)
	if err != nil {
		t.Fatalf("tracks: %v", err)
	}

	requireContains(t, out, "001")
	requireContains(t, out, "My Song")
	requireContains(t, out, "my_song.flac")
}

func TestConfigInitAndValidate(t *testing.T) {
	cfg := writeTestConfig(t)

	out, _, err := runCLI(t, []string{"-c", cfg, "config", "validate"}, nil)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")

	target := filepath.Join(t.TempDir(), "config.toml")
	out, _, err = runCLI(t, []string{"config", "init", "--path", target}, nil)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")

	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}
}
