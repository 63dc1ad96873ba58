// Package config loads, normalizes, and validates subburn's TOML
// configuration. Lookup order: an explicit --config path, then
// ~/.config/subburn/config.toml, then ./subburn.toml, then built-in defaults.
package config
