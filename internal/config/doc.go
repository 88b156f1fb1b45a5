// Package config loads and validates scormd's TOML configuration.
//
// Configuration resolves from an explicit --config path, then
// ~/.config/scormd/config.toml, then ./scormd.toml, falling back to built-in
// defaults when no file exists. All path fields are tilde-expanded and made
// absolute during Load so downstream code never re-resolves them.
package config
