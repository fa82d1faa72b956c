// Package config holds the effective run configuration for tbunread and the
// partial layers it is merged from.
package config

import (
	"path/filepath"
)

// AppName is used for the default configuration directory.
const AppName = "tbunread"

// DefaultConfigFilename is the file looked up in the user configuration directory.
const DefaultConfigFilename = "options.toml"

// Config is the effective configuration for one run.
type Config struct {
	Files      []string // Mailbox files, absolute after resolution
	Profile    string   // Thunderbird profile directory, "" means auto-discover
	ConfigPath string   // Config file that was or would be loaded
	DumpConfig bool     // Print configuration and exit
	NoConfig   bool     // Skip the config file
	NoZero     bool     // Suppress count output when it is 0
	NoNewline  bool     // No trailing newline after the total
	Trim       bool     // Strip whitespace around the total line
	Before     string   // Text printed before the total
	After      string   // Text printed after the total
	Location   bool     // Print a line per mailbox with its path
}

// DefaultConfigPath returns the default user configuration file location.
func DefaultConfigPath() string {
	return filepath.Join("~", ".config", AppName, DefaultConfigFilename)
}
