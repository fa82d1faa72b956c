// Package pattern expands glob entries in the mailbox file list.
package pattern

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// IsGlob reports whether path contains glob meta characters.
func IsGlob(path string) bool {
	return strings.ContainsAny(path, "*?[{")
}

// Pattern matches paths below a fixed directory against a compiled glob.
type Pattern struct {
	walkRoot string
	g        glob.Glob
}

// New compiles the glob rel relative to the directory root. Meta characters
// in root are matched literally. "*" does not cross directories, "**" does.
func New(root, rel string) (*Pattern, error) {
	root = filepath.Clean(root)
	rel = filepath.Clean(rel)

	sep := string(filepath.Separator)
	prefix := glob.QuoteMeta(root)
	if !strings.HasSuffix(root, sep) {
		prefix += sep
	}
	g, err := glob.Compile(prefix+rel, filepath.Separator)
	if err != nil {
		return nil, err
	}
	return &Pattern{walkRoot: filepath.Join(root, staticPrefix(rel)), g: g}, nil
}

// Match reports whether path matches the pattern.
func (p *Pattern) Match(path string) bool {
	return p.g.Match(path)
}

// Expand walks the static part of the pattern and returns every matching
// file or directory in lexical order.
func (p *Pattern) Expand() ([]string, error) {
	var matches []string
	err := filepath.WalkDir(p.walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == p.walkRoot {
				return fs.SkipAll
			}
			return nil
		}
		if path != p.walkRoot && p.Match(path) {
			matches = append(matches, path)
		}
		return nil
	})
	return matches, err
}

// staticPrefix returns the leading directories of rel without meta characters.
func staticPrefix(rel string) string {
	sep := string(filepath.Separator)
	var keep []string
	for _, part := range strings.Split(rel, sep) {
		if IsGlob(part) {
			break
		}
		keep = append(keep, part)
	}
	return strings.Join(keep, sep)
}
