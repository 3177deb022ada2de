package adapters

import (
	"os"
	"path/filepath"

	"lazyapps/internal/ports"
)

// IconThemeAdapter probes icon candidates on the real filesystem.
type IconThemeAdapter struct{}

var _ ports.IconThemePort = IconThemeAdapter{}

func NewIconThemeAdapter() IconThemeAdapter {
	return IconThemeAdapter{}
}

// Probe reports whether path exists and, when it does, resolves any
// symlinks so the launcher records the real target.
func (a IconThemeAdapter) Probe(path string) (string, bool) {
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	real, err := filepath.EvalSymlinks(path)
	if err != nil {
		return path, true
	}
	return real, true
}
