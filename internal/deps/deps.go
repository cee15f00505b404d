// Package deps reports availability of the external binaries the generated
// script calls at runtime. Generation itself needs none of them; the check
// exists so operators learn about missing tools before running a script,
// not halfway through an album.
package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"shellac/internal/config"
)

// Requirement defines an external binary the generated script relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a requirement.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// Requirements lists the script-runtime binaries for the configured tools.
func Requirements(tools config.Tools) []Requirement {
	return []Requirement{
		{Name: "SoX", Command: tools.Sox, Description: "primary decoder and normalizer"},
		{Name: "soxi", Command: tools.Soxi, Description: "primary decode probe"},
		{Name: "FFmpeg", Command: tools.FFmpeg, Description: "fallback decoder"},
		{Name: "ffprobe", Command: tools.FFprobe, Description: "fallback decode probe"},
		{Name: "LAME", Command: tools.Lame, Description: "MP3 encoder and tagger"},
		{Name: "iconv", Command: tools.Iconv, Description: "runtime transliteration"},
		{Name: "play", Command: "play", Description: "SoX playback front end", Optional: true},
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(cmd); err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}
