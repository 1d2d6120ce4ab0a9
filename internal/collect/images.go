// Package collect finds image files under a directory tree.
package collect

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNoImages reports that a traversal matched no files. Images itself never
// returns it; callers that treat an empty result as fatal wrap it.
var ErrNoImages = errors.New("no images found")

// Images returns the regular files under root whose lowercased suffix is in
// exts, sorted by path. Only direct children are considered unless recursive
// is set. Subdirectories that cannot be read are skipped. Each entry in exts
// must already be lowercase with a leading dot.
func Images(root string, exts []string, recursive bool) ([]string, error) {
	accepted := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		accepted[ext] = struct{}{}
	}

	var paths []string
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if path != root && entry != nil && entry.IsDir() {
				return filepath.SkipDir
			}
			return err
		}
		if entry.IsDir() {
			if path != root && !recursive {
				return filepath.SkipDir
			}
			return nil
		}
		if _, ok := accepted[strings.ToLower(Suffix(entry.Name()))]; !ok {
			return nil
		}
		regular, err := isRegular(path, entry)
		if err != nil {
			return err
		}
		if regular {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %q: %w", root, err)
	}
	sort.Strings(paths)
	return paths, nil
}

// Suffix returns the final extension of a file name including the dot.
// Dot-files such as ".png" and names ending in a dot have no suffix.
func Suffix(name string) string {
	dot := strings.LastIndex(name, ".")
	if dot <= 0 || dot == len(name)-1 {
		return ""
	}
	return name[dot:]
}

// isRegular follows symlinks so a link to an image counts as an image.
func isRegular(path string, entry fs.DirEntry) (bool, error) {
	if entry.Type().IsRegular() {
		return true, nil
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false, nil
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}
