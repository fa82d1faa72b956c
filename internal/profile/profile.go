// Package profile locates the Thunderbird user profile directory.
package profile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/mahyarmirrashed/tbunread/internal/pathutil"
)

// ErrNotFound is returned when no usable profile directory can be determined.
var ErrNotFound = errors.New("profile not found")

// IndexFilename is the profile index inside the Thunderbird base directory.
const IndexFilename = "profiles.ini"

// pathKey precedes the profile directory name in the index. The first
// occurrence is taken as the default profile.
const pathKey = "Path="

// DefaultBaseDir returns the Thunderbird data directory for the current platform.
func DefaultBaseDir() string {
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join("~", "Library", "Thunderbird")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "Thunderbird")
		}
	}
	return filepath.Join("~", ".thunderbird")
}

// Locator resolves explicit profile paths and discovers the default profile.
type Locator struct {
	BaseDir string // Thunderbird base directory holding profiles.ini
}

// NewLocator returns a Locator for the platform default base directory.
func NewLocator() *Locator {
	return &Locator{BaseDir: DefaultBaseDir()}
}

// Resolve returns the canonical profile directory. An empty profile means the
// default profile is discovered from the index file.
func (l *Locator) Resolve(profile string) (string, error) {
	if profile == "" {
		return l.Discover()
	}
	return l.Canonical(profile)
}

// Canonical returns the canonical form of an explicitly given profile
// directory. An empty path is not found.
func (l *Locator) Canonical(profile string) (string, error) {
	dir, err := pathutil.Fullpath(profile)
	if err != nil {
		return "", fmt.Errorf("%w: specified profile could not be found: %s", ErrNotFound, profile)
	}
	return dir, nil
}

// Discover reads the profile index and returns the base directory joined with
// the first Path= entry.
func (l *Locator) Discover() (string, error) {
	base := pathutil.Absolute(l.BaseDir)
	index := filepath.Join(base, IndexFilename)

	data, err := os.ReadFile(index)
	if err != nil {
		return "", fmt.Errorf("%w: could not read Thunderbird %s: %w", ErrNotFound, IndexFilename, err)
	}

	name := firstPath(string(data))
	if name == "" {
		return "", fmt.Errorf("%w: no default profile in %s", ErrNotFound, index)
	}

	dir := filepath.FromSlash(name)
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(base, dir)
	}
	log.Debugf("Discovered default profile %s", dir)
	return dir, nil
}

// firstPath returns the value of the first Path= key up to the line end.
func firstPath(doc string) string {
	_, rest, found := strings.Cut(doc, pathKey)
	if !found {
		return ""
	}
	value, _, _ := strings.Cut(rest, "\n")
	return strings.TrimSuffix(value, "\r")
}
