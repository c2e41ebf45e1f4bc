// Package fonts locates font files on the host.
// A missing font is never fatal: callers fall back to a built-in face.
package fonts

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrUnavailable is returned when none of the candidate fonts could be read.
var ErrUnavailable = errors.New("fonts: font unavailable")

// File is a font file read from disk.
type File struct {
	Path string
	Data []byte
}

// Load returns the first candidate that exists and is non-empty.
// The error wraps ErrUnavailable and lists every path tried.
func Load(candidates []string) (File, error) {
	var tried []string
	for _, path := range candidates {
		path = expandHome(strings.TrimSpace(path))
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil || len(data) == 0 {
			tried = append(tried, path)
			continue
		}
		return File{Path: path, Data: data}, nil
	}
	if len(tried) == 0 {
		return File{}, fmt.Errorf("%w: no candidates", ErrUnavailable)
	}
	return File{}, fmt.Errorf("%w: tried %s", ErrUnavailable, strings.Join(tried, ", "))
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return home + path[1:]
}
