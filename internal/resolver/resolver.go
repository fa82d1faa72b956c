// Package resolver builds the effective configuration for a run from the
// built-in defaults, the user config file and the command line, then
// normalizes the profile and mailbox paths against the filesystem.
package resolver

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/mahyarmirrashed/tbunread/internal/config"
	"github.com/mahyarmirrashed/tbunread/internal/pathutil"
	"github.com/mahyarmirrashed/tbunread/internal/pattern"
	"github.com/mahyarmirrashed/tbunread/internal/profile"
)

// ErrNoInputFiles is returned when no mailbox files are configured.
var ErrNoInputFiles = errors.New("no input files for mailboxes specified")

// DefaultInboxNames are probed, in order, inside directory entries.
var DefaultInboxNames = []string{"Inbox.msf", "INBOX.msf"}

// Resolver produces a config.Config from the configuration sources.
type Resolver struct {
	Fs                afero.Fs         // Used for the config file only; profiles and mailboxes are on the OS filesystem
	Locator           *profile.Locator // Profile lookup
	DefaultConfigPath string           // Config file used when none is given
}

// New returns a Resolver using the operating system filesystem and the
// platform default locations.
func New() *Resolver {
	return &Resolver{
		Fs:                afero.NewOsFs(),
		Locator:           profile.NewLocator(),
		DefaultConfigPath: config.DefaultConfigPath(),
	}
}

// Resolve merges defaults, the config file and args, then resolves the
// profile and expands the file list. On error the returned Config is the
// best-effort state reached so far.
func (r *Resolver) Resolve(args config.Layer) (config.Config, error) {
	configPath := r.DefaultConfigPath
	explicit := args.Config != nil
	if explicit {
		configPath = *args.Config
	}
	configPath = pathutil.Absolute(configPath)
	args.Config = &configPath

	stack := config.Stack{
		Defaults: config.Defaults(configPath),
		Args:     args,
	}

	if args.NoConfig == nil || !*args.NoConfig {
		file, err := r.loadFile(configPath, explicit)
		if err != nil {
			return stack.Merge().Effective(), err
		}
		// The file's own location is informational only.
		file.Config = nil
		stack.File = file
	} else {
		log.Debug("Skipping config file")
	}

	merged := stack.Merge()
	cfg := merged.Effective()
	if err := r.normalize(&cfg, merged.Profile != nil); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (r *Resolver) loadFile(path string, explicit bool) (config.Layer, error) {
	if !explicit {
		if ok, _ := afero.Exists(r.Fs, path); !ok {
			log.Debugf("No config file at %s", path)
			return config.Layer{}, nil
		}
	}
	return config.LoadConfig(r.Fs, path)
}

// normalize resolves the profile before checking the file list so that
// profile errors are reported first. A profile that was set, even to "", is
// never auto-discovered.
func (r *Resolver) normalize(cfg *config.Config, profileSet bool) error {
	var dir string
	var err error
	if profileSet {
		dir, err = r.Locator.Canonical(cfg.Profile)
	} else {
		dir, err = r.Locator.Discover()
	}
	if err != nil {
		return err
	}
	cfg.Profile = dir
	log.Debugf("Using profile %s", dir)

	if err := expandRelativeFiles(cfg, dir); err != nil {
		return err
	}
	expandDirectoryDefaults(cfg)
	return nil
}

// expandRelativeFiles makes every entry absolute, joining relative entries to
// the profile directory. An entry that exists on disk is always taken
// literally, so folder names like "[Gmail].sbd" are not treated as patterns.
// Other glob entries are replaced by their matches; a glob without matches is
// kept as a literal path and fails when read.
func expandRelativeFiles(cfg *config.Config, profileDir string) error {
	if len(cfg.Files) == 0 {
		return ErrNoInputFiles
	}

	files := make([]string, 0, len(cfg.Files))
	for _, entry := range cfg.Files {
		entry = pathutil.ExpandTilde(entry)

		path := entry
		if !filepath.IsAbs(path) {
			path = filepath.Join(profileDir, path)
		}

		if pattern.IsGlob(entry) && !pathutil.Exists(path) {
			matches, err := expandGlob(entry, profileDir)
			if err != nil {
				log.Warnf("%v, using it as a path", err)
			}
			if len(matches) > 0 {
				files = append(files, matches...)
				continue
			}
		}

		files = append(files, canonical(path))
	}

	cfg.Files = files
	return nil
}

func expandGlob(entry, profileDir string) ([]string, error) {
	root, rel := profileDir, entry
	if filepath.IsAbs(entry) {
		root = filepath.VolumeName(entry) + string(filepath.Separator)
		rel = strings.TrimLeft(entry[len(filepath.VolumeName(entry)):], `/\`)
	}

	p, err := pattern.New(root, rel)
	if err != nil {
		return nil, fmt.Errorf("invalid file pattern %q: %w", entry, err)
	}
	matches, err := p.Expand()
	if err != nil {
		return nil, fmt.Errorf("expanding file pattern %q: %w", entry, err)
	}
	if len(matches) == 0 {
		log.Warnf("Pattern %q matched no mailbox files, using it as a path", entry)
	}

	for i, m := range matches {
		matches[i] = canonical(m)
	}
	log.Debugf("Pattern %q matched %d entries", entry, len(matches))
	return matches, nil
}

// canonical returns the resolved form of path, or path itself when it does
// not exist so that reading it later reports the missing file.
func canonical(path string) string {
	full, err := pathutil.Fullpath(path)
	if err != nil {
		log.Debugf("Could not resolve %s: %v", path, err)
		return filepath.Clean(path)
	}
	return full
}

// expandDirectoryDefaults replaces directory entries with their default inbox
// file. Directories without one are left as they are.
func expandDirectoryDefaults(cfg *config.Config) {
	for i, path := range cfg.Files {
		if !pathutil.IsDir(path) {
			continue
		}
		for _, name := range DefaultInboxNames {
			inbox := filepath.Join(path, name)
			if pathutil.IsFile(inbox) {
				log.Debugf("Using %s for directory %s", name, path)
				cfg.Files[i] = inbox
				break
			}
		}
	}
}
