package blogroot

import (
	"os"
	"path/filepath"
)

// Marker files that identify the root of a site checkout. The generator's
// own config files count so blogctl works in a blog that has never been
// configured explicitly.
var markers = []string{
	".blogctl.yaml",
	"hugo.toml",
	"hugo.yaml",
	"config.toml",
	"config.yaml",
}

// Find walks up from startDir looking for a site marker file.
// Returns the directory containing it, or "" when none is found.
func Find(startDir string) (string, error) {
	dir := startDir
	for {
		found, err := IsRoot(dir)
		if err != nil {
			return "", err
		}
		if found {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// IsRoot reports whether dir contains any site marker file.
func IsRoot(dir string) (bool, error) {
	for _, m := range markers {
		if _, err := os.Stat(filepath.Join(dir, m)); err == nil {
			return true, nil
		} else if !os.IsNotExist(err) {
			return false, err
		}
	}
	return false, nil
}
