// Package workspace locates the enclosing project workspace root, used as
// the fallback mailbox scoping key.
package workspace

import (
	"os"
	"path/filepath"
)

// Markers that identify a workspace root, checked in order at each level.
var markers = []string{".agent-mail", ".git"}

// Find walks up from start looking for a workspace marker. It returns the
// first directory containing one, or false when no marker exists up to the
// filesystem root.
func Find(start string) (string, bool) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false
	}

	for {
		for _, marker := range markers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, true
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
