// Package config loads settings for the userauth CLI client: defaults, an
// optional JSON file, environment variables and command-line flags.
package config
