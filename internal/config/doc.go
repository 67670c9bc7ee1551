// Package config loads the optional subm configuration file.
//
// The file lives at ~/.config/subm/config.toml. A missing file is not an
// error; every field has a default. Only an existing but malformed file
// causes Load to fail.
package config
