// Package track assigns stable numeric identifiers to an ordered input
// sequence. Identifiers are fixed-width three-digit numbers, so one
// generation run can address at most MaxID tracks; overflowing that limit
// aborts the run before any output is produced.
package track

import (
	"errors"
	"fmt"
)

// MaxID is the largest identifier a track can carry.
const MaxID = 999

// ErrTrackLimit reports that the input sequence would assign an identifier
// above MaxID.
var ErrTrackLimit = errors.New("track limit exceeded")

// Track pairs one input path with its assigned identifier. Tracks are
// immutable once assigned.
type Track struct {
	ID   int
	Path string
}

// Number renders the identifier as a zero-padded three-digit string.
func (t Track) Number() string {
	return fmt.Sprintf("%03d", t.ID)
}

// FuncName returns the generated-script function name for the track.
func (t Track) FuncName() string {
	return "track_" + t.Number()
}

// Assign maps paths to identifiers offset, offset+1, ... in input order.
// It fails with ErrTrackLimit when the final identifier would exceed MaxID,
// returning no partial assignment.
func Assign(paths []string, offset int) ([]Track, error) {
	if offset < 1 {
		return nil, fmt.Errorf("track offset must be at least 1, got %d", offset)
	}
	if len(paths) == 0 {
		return nil, errors.New("no input files")
	}
	last := offset + len(paths) - 1
	if last > MaxID {
		return nil, fmt.Errorf("%w: %d files starting at %d would end at %d (max %d)",
			ErrTrackLimit, len(paths), offset, last, MaxID)
	}
	tracks := make([]Track, len(paths))
	for i, p := range paths {
		tracks[i] = Track{ID: offset + i, Path: p}
	}
	return tracks, nil
}
