// Package config loads and validates booki's TOML configuration.
//
// Configuration lives at ~/.config/booki/config.toml by default and every
// key has a working default, so a missing file is not an error. Load
// expands paths, normalizes values, and validates before returning.
package config
