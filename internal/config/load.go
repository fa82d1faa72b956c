package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnreadable is returned when the config file cannot be read.
	ErrUnreadable = errors.New("config file unreadable")
	// ErrMalformed is returned when the config file cannot be decoded.
	ErrMalformed = errors.New("config file malformed")
)

// LoadConfig reads the config file at path into a Layer. Files ending in
// .yaml or .yml are decoded as YAML, anything else as TOML.
func LoadConfig(fs afero.Fs, path string) (Layer, error) {
	var layer Layer

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return layer, fmt.Errorf("%w: %s: %w", ErrUnreadable, path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &layer); err != nil {
			return Layer{}, fmt.Errorf("%w: %s: %w", ErrMalformed, path, err)
		}
	default:
		md, err := toml.Decode(string(data), &layer)
		if err != nil {
			return Layer{}, fmt.Errorf("%w: %s: %w", ErrMalformed, path, err)
		}
		for _, key := range md.Undecoded() {
			log.Warnf("Unknown key %q in %s", key.String(), path)
		}
	}

	log.Debugf("Loaded config file %s", path)
	return layer, nil
}
