package ports

// IconThemePort probes one candidate icon path inside a theme tree.
// Probe returns the real path (symlinks resolved) and true when the
// file exists.
type IconThemePort interface {
	Probe(path string) (string, bool)
}
