package state

import (
	"path/filepath"
	"runtime"
	"strings"
)

// NormalizePath converts a folder or file path into the canonical key form
// used by the store: cleaned, forward-slash separated, and case-folded on
// platforms with case-insensitive filesystems. The same path must always
// produce the same key regardless of how the caller spelled it.
func NormalizePath(path string) string {
	p := filepath.ToSlash(filepath.Clean(path))
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		p = strings.ToLower(p)
	}
	return p
}
