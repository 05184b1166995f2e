// SPDX-License-Identifier: MPL-2.0

package config

// Config is the root configuration for the lab CLI.
type Config struct {
	UI     UIConfig     `mapstructure:"ui" toml:"ui"`
	Backup BackupConfig `mapstructure:"backup" toml:"backup"`
}

// UIConfig holds output-related settings.
type UIConfig struct {
	// Verbose enables debug diagnostics, same as the --verbose flag.
	Verbose bool `mapstructure:"verbose" toml:"verbose"`
}

// BackupConfig holds defaults for the backup command.
type BackupConfig struct {
	// Dir is the default target directory when none is given on the
	// command line.
	Dir string `mapstructure:"dir" toml:"dir"`
	// Exclude holds glob patterns always applied to backup archives.
	Exclude []string `mapstructure:"exclude" toml:"exclude"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{}
}
