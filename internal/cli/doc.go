// Package cli wires the gitlaunch command line onto the launch pipeline.
//
// Flag values are handed to config.Resolve as raw strings, so an omitted flag
// and an empty one both fall back to the config file and the built-in defaults.
package cli
