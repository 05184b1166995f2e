// SPDX-License-Identifier: MPL-2.0

// Package config loads the lab configuration from the platform config
// directory (TOML, via viper) and exposes it to the CLI layer. All settings
// are optional; a missing config file yields the defaults.
package config
