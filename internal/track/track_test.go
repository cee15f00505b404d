package track

import (
	"errors"
	"fmt"
	"testing"
)

func TestAssignSequential(t *testing.T) {
	paths := []string{"/m/a.flac", "/m/b.flac", "/m/c.flac"}
	tracks, err := Assign(paths, 1)
	if err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if len(tracks) != len(paths) {
		t.Fatalf("expected %d tracks, got %d", len(paths), len(tracks))
	}
	seen := make(map[string]bool)
	for i, tr := range tracks {
		want := fmt.Sprintf("%03d", i+1)
		if tr.Number() != want {
			t.Fatalf("track %d number = %q, want %q", i, tr.Number(), want)
		}
		if seen[tr.Number()] {
			t.Fatalf("duplicate track number %q", tr.Number())
		}
		seen[tr.Number()] = true
		if tr.Path != paths[i] {
			t.Fatalf("track %d path = %q, want %q", i, tr.Path, paths[i])
		}
	}
}

func TestAssignOffset(t *testing.T) {
	tracks, err := Assign([]string{"x", "y"}, 42)
	if err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if tracks[0].Number() != "042" || tracks[1].Number() != "043" {
		t.Fatalf("unexpected numbers %q, %q", tracks[0].Number(), tracks[1].Number())
	}
	if tracks[0].FuncName() != "track_042" {
		t.Fatalf("unexpected function name %q", tracks[0].FuncName())
	}
}

func TestAssignOverflow(t *testing.T) {
	paths := make([]string, 5)
	for i := range paths {
		paths[i] = fmt.Sprintf("/m/%d.flac", i)
	}
	tracks, err := Assign(paths, 997)
	if !errors.Is(err, ErrTrackLimit) {
		t.Fatalf("expected ErrTrackLimit, got %v", err)
	}
	if tracks != nil {
		t.Fatalf("expected no partial assignment, got %d tracks", len(tracks))
	}
}

func TestAssignBoundary(t *testing.T) {
	paths := []string{"a", "b", "c"}
	tracks, err := Assign(paths, 997)
	if err != nil {
		t.Fatalf("997..999 should fit: %v", err)
	}
	if tracks[2].Number() != "999" {
		t.Fatalf("last number = %q, want 999", tracks[2].Number())
	}
}

func TestAssignRejectsBadInput(t *testing.T) {
	if _, err := Assign([]string{"a"}, 0); err == nil {
		t.Fatal("expected error for offset below 1")
	}
	if _, err := Assign(nil, 1); err == nil {
		t.Fatal("expected error for empty input")
	}
}
