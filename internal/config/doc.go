// Package config loads and validates shellac configuration from TOML.
//
// Configuration is optional: with no file present the defaults generate a
// usable script. The resolution order is an explicit --config path, then
// ~/.config/shellac/config.toml, then shellac.toml in the working directory.
package config
