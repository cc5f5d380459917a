// Package config loads and validates the YAML configuration for the merge
// command line tool.
package config
