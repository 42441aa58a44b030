// Package config resolves the options of a gitlaunch run.
//
// It handles:
//   - Built-in defaults
//   - Defaults read from a YAML config file
//   - Parsing of the --visibility, --transport and --init flag values
package config
