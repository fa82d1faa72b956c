// Package pathutil canonicalizes user supplied paths for profiles and mailbox files.
package pathutil

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotExist is returned by Fullpath when the path cannot be resolved on disk.
var ErrNotExist = errors.New("path does not exist")

// ExpandTilde will resolve a leading "~" to the current user's home directory.
func ExpandTilde(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// Absolute expands "~" and makes path absolute without touching the filesystem.
func Absolute(path string) string {
	path = ExpandTilde(path)
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}

// Fullpath expands "~", resolves symbolic links and relative segments, and
// returns the absolute path. The path must exist.
func Fullpath(path string) (string, error) {
	if path == "" {
		return "", ErrNotExist
	}
	resolved, err := filepath.EvalSymlinks(Absolute(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNotExist
		}
		return "", err
	}
	return resolved, nil
}

// Exists reports whether path exists. Symbolic links are followed.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsFile reports whether path exists and is a regular file.
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
