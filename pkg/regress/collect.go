package regress

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultMarker is the substring that identifies result directories.
const DefaultMarker = "sim_"

// ResultDirectory is one directory produced by a single regression run.
type ResultDirectory struct {
	Name string // base name, e.g. "sim_1234"
	Path string // full path
}

// Collect walks root and returns every directory whose name contains marker.
// Matching directories are descended into as well, so a marker that appears
// at several depths yields several entries. The root itself is never
// collected. A symlinked root is followed; a symlinked marker directory below
// it is collected but not descended into. An empty result is reported as
// *NotFoundError.
func Collect(root, marker string) ([]ResultDirectory, error) {
	if marker == "" {
		return nil, errors.New("empty directory marker")
	}

	walkRoot, err := resolveRoot(root)
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	var dirs []ResultDirectory
	err = filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == walkRoot {
				return err
			}
			// Unreadable subtree: keep walking its siblings.
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if path == walkRoot || !strings.Contains(d.Name(), marker) {
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			info, err := os.Stat(path)
			if err != nil || !info.IsDir() {
				return nil
			}
		} else if !d.IsDir() {
			return nil
		}
		dirs = append(dirs, ResultDirectory{Name: d.Name(), Path: underRoot(root, walkRoot, path)})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	if len(dirs) == 0 {
		return nil, &NotFoundError{Root: root, Marker: marker}
	}
	return dirs, nil
}

// resolveRoot returns the directory to walk: root itself, or its target when
// root is a symlink.
func resolveRoot(root string) (string, error) {
	info, err := os.Lstat(root)
	if err != nil {
		return "", err
	}
	if info.Mode()&fs.ModeSymlink == 0 {
		return root, nil
	}
	return filepath.EvalSymlinks(root)
}

// underRoot rewrites a walked path so it is expressed relative to the root
// the caller gave, not the resolved symlink target.
func underRoot(root, walkRoot, path string) string {
	if root == walkRoot {
		return path
	}
	rel, err := filepath.Rel(walkRoot, path)
	if err != nil {
		return path
	}
	return filepath.Join(root, rel)
}
